package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fitfeast/internal/app"
	"fitfeast/internal/catalog"
	"fitfeast/internal/cookbook"
	"fitfeast/internal/freshness"
	"fitfeast/internal/matching"
	"fitfeast/internal/metrics"
	"fitfeast/internal/pantry"
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

type addCommand struct {
	Quantity float64
	Unit     string
	Name     string
}

// parseAddCommand reads "<qty> <unit> <name>". "<qty> <name>" leaves the unit
// empty and a bare name means one of the ingredient's default unit.
func parseAddCommand(args string) (addCommand, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return addCommand{}, errors.New("missing ingredient name")
	}
	if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
		return addCommand{Quantity: 1, Name: strings.Join(fields, " ")}, nil
	}

	cmd := addCommand{Quantity: pantry.ParseQuantity(fields[0])}
	switch len(fields) {
	case 1:
		return addCommand{}, errors.New("missing ingredient name")
	case 2:
		cmd.Name = fields[1]
	default:
		cmd.Unit = strings.ToLower(fields[1])
		cmd.Name = strings.Join(fields[2:], " ")
	}
	return cmd, nil
}

func formatPantry(report *app.PantryReport) string {
	var sb strings.Builder
	sb.WriteString("🧺 *Your Pantry*\n\n")

	if len(report.Items) == 0 {
		sb.WriteString("_Empty. Add something with /add_\n")
		return sb.String()
	}

	for _, v := range report.Items {
		line := fmt.Sprintf("• *%s*: %s %s", escape(v.Ingredient.Name), formatQuantity(v.Quantity), escape(v.Unit))
		if !v.Available() {
			line += " _(used)_"
		} else if v.Freshness != nil {
			line += fmt.Sprintf(" %s %s", freshnessIcon(v.Freshness.Bucket), v.Freshness.Message)
		}
		sb.WriteString(line + "\n")
	}

	t := report.Totals
	sb.WriteString(fmt.Sprintf("\n💪 P %.1fg · C %.1fg · F %.1fg\n", t.Protein, t.Carbs, t.Fats))

	if len(report.Expiring) > 0 {
		sb.WriteString("\n⚠️ *Use soon*\n")
		for _, v := range report.Expiring {
			sb.WriteString(fmt.Sprintf("• %s\n", escape(v.Ingredient.Name)))
		}
	}
	return sb.String()
}

func freshnessIcon(b freshness.Bucket) string {
	switch b {
	case freshness.Expired:
		return "⛔"
	case freshness.Critical:
		return "🔴"
	case freshness.Warning:
		return "🟡"
	}
	return "🟢"
}

// pantryKeyboard offers used/remove buttons for every available entry.
func pantryKeyboard(items []pantry.View) (tgbotapi.InlineKeyboardMarkup, bool) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, v := range items {
		if !v.Available() {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ "+v.Ingredient.Name, "used|"+v.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "remove|"+v.ID),
		))
	}
	if len(rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

func formatSuggestions(makeable []catalog.Recipe, nearMiss []matching.NearMissRecipe) string {
	var sb strings.Builder
	sb.WriteString("👩‍🍳 *Ready to cook*\n\n")
	if len(makeable) == 0 {
		sb.WriteString("_Nothing yet_\n")
	}
	for _, r := range makeable {
		sb.WriteString(recipeLine(r))
	}

	if len(nearMiss) > 0 {
		sb.WriteString("\n🛒 *Almost there*\n\n")
		for _, nm := range nearMiss {
			names := make([]string, len(nm.MissingIngredients))
			for i, ing := range nm.MissingIngredients {
				names[i] = ing.Name
			}
			sb.WriteString(recipeLine(nm.Recipe))
			sb.WriteString(fmt.Sprintf("  _missing: %s_\n", escape(strings.Join(names, ", "))))
		}
	}
	return sb.String()
}

func recipeLine(r catalog.Recipe) string {
	line := "• *" + escape(r.Name) + "*"
	if mins := r.TotalTimeMinutes(); mins > 0 {
		line += fmt.Sprintf(" (%d min)", mins)
	}
	if r.ProteinPerServing > 0 {
		line += fmt.Sprintf(" · %.0fg protein", r.ProteinPerServing)
	}
	return line + "\n"
}

func formatSaved(saved []cookbook.SavedRecipe) string {
	var sb strings.Builder
	sb.WriteString("📖 *Saved Recipes*\n\n")
	if len(saved) == 0 {
		sb.WriteString("_No saved recipes_\n")
	}
	for _, s := range saved {
		sb.WriteString(recipeLine(s.Recipe))
	}
	return sb.String()
}

func formatMetrics(usage []metrics.DailyUsage, health metrics.SysHealth) string {
	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d runs, %d users, avg %.0fms\n", d.Date, d.Runs, d.Users, d.AvgLatencyMS))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s (%d files)\n", health.DataSize, health.DataFiles))
	return sb.String()
}

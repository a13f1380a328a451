package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"barbellfx-relay/internal/model"
)

// FormatSignalMessage renders signal as an HTML Telegram message.
func FormatSignalMessage(signal model.Signal) string {
	var builder strings.Builder

	emoji := "📊"
	switch strings.ToUpper(strings.TrimSpace(signal.Action)) {
	case "BUY":
		emoji = "🟢"
	case "SELL":
		emoji = "🔴"
	}

	builder.WriteString(fmt.Sprintf("%s <b>%s %s</b>\n\n", emoji, html.EscapeString(signal.Action), html.EscapeString(signal.Pair)))
	builder.WriteString(fmt.Sprintf("🎯 Entry: %s - %s\n", price(signal.EntryMin), price(signal.EntryMax)))
	builder.WriteString(fmt.Sprintf("🛑 Stop Loss: %s\n", price(signal.StopLoss)))
	builder.WriteString(fmt.Sprintf("💰 TP1: %s\n", price(signal.TP1)))
	if signal.TP2 > 0 {
		builder.WriteString(fmt.Sprintf("💰 TP2: %s\n", price(signal.TP2)))
	}
	builder.WriteString(fmt.Sprintf("🏁 Full TP: %s\n", price(signal.TPFull)))
	builder.WriteString(fmt.Sprintf("⭐ Confidence: %s%%\n", strconv.FormatFloat(signal.Confidence, 'f', 0, 64)))
	if signal.Setup != "" {
		builder.WriteString(fmt.Sprintf("\n📝 %s\n", html.EscapeString(signal.Setup)))
	}
	if signal.Timestamp != "" {
		builder.WriteString(fmt.Sprintf("🕐 %s\n", html.EscapeString(signal.Timestamp)))
	}
	return builder.String()
}

func price(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package notify

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

// UnsubscribePlaceholder is embedded verbatim in both content bodies.
// Resend resolves it per-recipient at broadcast time; this code never
// attempts to resolve or validate it.
const UnsubscribePlaceholder = "{{RESEND_UNSUBSCRIBE_URL}}"

// renderData feeds both templates. PlayerLine is pre-built because the
// singular/collective phrasing differs between the rich and plain bodies.
type renderData struct {
	PlayerLine     string
	Performances   []state.PerformanceRecord
	UnsubscribeRef string
}

// Render produces the rich-markup and plain-text bodies of the alert from
// the scanned performances. Pure and deterministic: no I/O, and a given
// performance list always renders the same pair. An empty list is valid
// (preview and test paths) and renders the shell without player lines.
func Render(performances []state.PerformanceRecord) (html, text string, err error) {
	htmlData := renderData{
		PlayerLine:     htmlPlayerLine(performances),
		Performances:   performances,
		UnsubscribeRef: UnsubscribePlaceholder,
	}
	textData := renderData{
		PlayerLine:     textPlayerLine(performances),
		Performances:   performances,
		UnsubscribeRef: UnsubscribePlaceholder,
	}

	var hb, tb strings.Builder
	if err := htmlTmpl.Execute(&hb, htmlData); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	if err := textTmpl.Execute(&tb, textData); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return hb.String(), tb.String(), nil
}

// htmlPlayerLine builds the headline sentence for the rich body: singular
// phrasing for exactly one performance, collective phrasing otherwise.
func htmlPlayerLine(performances []state.PerformanceRecord) string {
	if len(performances) == 1 {
		p := performances[0]
		return fmt.Sprintf(
			"<span style='color: #FFD700; font-weight: bold;'>%s</span> dropped <span style='color: #FF1493; font-weight: bold;'>%d POINTS</span> last night!",
			p.Player, p.Points)
	}
	parts := make([]string, len(performances))
	for i, p := range performances {
		parts[i] = fmt.Sprintf("<span style='color: #FFD700;'>%s</span> (%d)", p.Player, p.Points)
	}
	return "Multiple ballers went off: " + strings.Join(parts, " // ")
}

// textPlayerLine is the plain-text counterpart of htmlPlayerLine.
func textPlayerLine(performances []state.PerformanceRecord) string {
	if len(performances) == 1 {
		p := performances[0]
		return fmt.Sprintf("%s DROPPED %d POINTS last night!", p.Player, p.Points)
	}
	parts := make([]string, len(performances))
	for i, p := range performances {
		parts[i] = fmt.Sprintf("%s (%d)", p.Player, p.Points)
	}
	return "Multiple ballers went off: " + strings.Join(parts, " // ")
}

// The 90s-NBA styled rich body. Player names reach this template already
// folded to ASCII, so no escaping layer sits between the records and the
// markup.
var htmlTmpl = template.Must(template.New("html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link href="https://fonts.googleapis.com/css2?family=Bebas+Neue&display=swap" rel="stylesheet">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #2D1B4E;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: linear-gradient(180deg, #1a0a2e 0%, #2D1B4E 100%); border: 4px solid #00CED1; position: relative;">

            <!-- Yellow Corner Triangle (top-left) -->
            <div style="width: 0; height: 0; border-left: 40px solid #FFD700; border-bottom: 40px solid transparent; position: absolute; top: -4px; left: -4px;"></div>

            <!-- Header -->
            <div style="background: linear-gradient(135deg, #6B2D9B 0%, #2D1B4E 100%); padding: 30px; text-align: center; border-bottom: 3px solid #FF6B35;">
                <div style="font-size: 60px; margin-bottom: 10px;">🏀</div>
                <h1 style="font-family: 'Bebas Neue', Arial, sans-serif; color: #FFD700; margin: 0; font-size: 42px; letter-spacing: 4px; text-shadow: 3px 3px 0 #FF6B35;">50% OFF IS LIVE!</h1>
                <p style="color: #00CED1; font-size: 12px; letter-spacing: 3px; margin-top: 8px;">★ ★ ★ BALLIN' SINCE '95 ★ ★ ★</p>
            </div>

            <!-- Content -->
            <div style="padding: 30px;">
                <p style="font-size: 18px; color: #c9b8e0; line-height: 1.7; margin-top: 0;">
                    {{.PlayerLine}}
                </p>

                <!-- Promo Box -->
                <div style="background: linear-gradient(90deg, #FF6B35 0%, #FF1493 100%); color: white; padding: 25px; text-align: center; margin: 25px 0; border-left: 5px solid #FFD700;">
                    <div style="font-family: 'Bebas Neue', Arial, sans-serif; font-size: 48px; font-weight: bold; letter-spacing: 3px; text-shadow: 3px 3px 0 #6B2D9B;">50% OFF</div>
                    <div style="font-size: 14px; letter-spacing: 2px; margin-top: 5px;">VALID UNTIL 11:00 AM PT TODAY</div>
                </div>

                <!-- How to use -->
                <h3 style="font-family: 'Bebas Neue', Arial, sans-serif; color: #00CED1; margin-bottom: 15px; font-size: 20px; letter-spacing: 3px;">THE GAME PLAN:</h3>
                <ol style="color: #c9b8e0; line-height: 2; padding-left: 20px; margin: 0;">
                    <li>Open the <strong style="color: #FFD700;">DoorDash app</strong></li>
                    <li>Look for the <strong style="color: #FFD700;">50% off banner</strong></li>
                    <li>Order before <strong style="color: #FF1493;">11 AM PT</strong>!</li>
                </ol>

                <!-- Stats Box -->
                <div style="background: rgba(0, 206, 209, 0.1); padding: 20px; margin-top: 25px; border-left: 4px solid #00CED1;">
                    <h4 style="margin: 0 0 15px 0; color: #FF1493; font-size: 14px; text-transform: uppercase; letter-spacing: 2px; font-family: 'Bebas Neue', Arial, sans-serif;">LAST NIGHT'S BIG PERFORMANCE</h4>
                    {{range .Performances}}
                    <div style="display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid rgba(107, 45, 155, 0.3);">
                        <span style="color: #c9b8e0; font-weight: bold;">{{.Player}} ({{.Team}})</span>
                        <span style="font-family: 'Bebas Neue', Arial, sans-serif; font-size: 22px; color: #FFD700; text-shadow: 2px 2px 0 #FF6B35;">{{.Points}} PTS</span>
                    </div>
                    {{end}}
                </div>
            </div>

            <!-- Footer -->
            <div style="background: rgba(0, 0, 0, 0.3); padding: 20px; text-align: center; border-top: 2px dashed #6B2D9B;">
                <p style="color: #6a5a7a; font-size: 11px; margin: 0; letter-spacing: 1px;">
                    FREE FOREVER // UNSUBSCRIBE ANYTIME // NO SPAM
                    <br><br>
                    <a href="{{.UnsubscribeRef}}" style="color: #00CED1;">Unsubscribe</a>
                </p>
            </div>

            <!-- Pink Corner Triangle (bottom-right) -->
            <div style="width: 0; height: 0; border-right: 40px solid #FF1493; border-top: 40px solid transparent; position: absolute; bottom: -4px; right: -4px;"></div>

        </div>
    </div>
</body>
</html>
`))

var textTmpl = template.Must(template.New("text").Parse(`==================================
  50-POINT ALERTS
  * * * Ballin' Since '95 * * *
==================================

{{.PlayerLine}}

+--------------------------------+
|                                |
|          50% OFF               |
|                                |
|   Valid until 11:00 AM PT      |
|                                |
+--------------------------------+

THE GAME PLAN:
1. Open the DoorDash app
2. Look for the 50% off banner
3. Order before 11 AM PT!

Last Night's Performance:
{{range .Performances}}  * {{.Player}} ({{.Team}}): {{.Points}} PTS
{{end}}
---
You're receiving this because you signed up for 50-Point Alerts.
Unsubscribe: {{.UnsubscribeRef}}
`))

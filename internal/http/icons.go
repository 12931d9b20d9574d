package http

import "github.com/mightymouse007/genie-it-pathfinder/internal/domain"

// iconAssets resuelve cada etiqueta cerrada de ícono a su recurso de
// presentación. El core nunca resuelve íconos; esta tabla es el borde.
var iconAssets = map[domain.IconTag]string{
	"BarChart":    "/static/icons/bar-chart.svg",
	"Beaker":      "/static/icons/beaker.svg",
	"Book":        "/static/icons/book.svg",
	"Bot":         "/static/icons/bot.svg",
	"Brain":       "/static/icons/brain.svg",
	"CheckCircle": "/static/icons/check-circle.svg",
	"Cloud":       "/static/icons/cloud.svg",
	"Code":        "/static/icons/code.svg",
	"Compass":     "/static/icons/compass.svg",
	"Database":    "/static/icons/database.svg",
	"Eye":         "/static/icons/eye.svg",
	"FileText":    "/static/icons/file-text.svg",
	"GitBranch":   "/static/icons/git-branch.svg",
	"Heart":       "/static/icons/heart.svg",
	"Home":        "/static/icons/home.svg",
	"Lightbulb":   "/static/icons/lightbulb.svg",
	"Lock":        "/static/icons/lock.svg",
	"Paintbrush":  "/static/icons/paintbrush.svg",
	"Palette":     "/static/icons/palette.svg",
	"Puzzle":      "/static/icons/puzzle.svg",
	"Rocket":      "/static/icons/rocket.svg",
	"Server":      "/static/icons/server.svg",
	"Shield":      "/static/icons/shield.svg",
	"Smartphone":  "/static/icons/smartphone.svg",
	"Sparkles":    "/static/icons/sparkles.svg",
	"Users":       "/static/icons/users.svg",
	"Users2":      "/static/icons/users-2.svg",
	"Video":       "/static/icons/video.svg",
	"Wrench":      "/static/icons/wrench.svg",
	"Zap":         "/static/icons/zap.svg",
}

func iconAsset(tag domain.IconTag) string {
	if tag == "" {
		return ""
	}
	return iconAssets[tag]
}

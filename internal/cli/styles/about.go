package styles

import (
	"fmt"
	"strings"

	"github.com/infinitty/infinitty/internal/domain/build"
)

// AboutRenderer renders build information for the version command.
type AboutRenderer struct {
	theme Theme
}

// NewAboutRenderer creates an about renderer with the given theme.
func NewAboutRenderer(theme Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render formats build info as a bordered block.
func (r *AboutRenderer) Render(info build.Info) string {
	var b strings.Builder

	b.WriteString(r.theme.Title.Render("Infinitty"))
	b.WriteString("\n")
	b.WriteString(r.theme.Subtitle.Render("desktop shell for embedded web surfaces"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Repository", build.RepoURL()},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%-11s", row[0])),
			r.theme.Normal.Render(row[1]),
		))
	}

	return r.theme.Box.Render(strings.TrimRight(b.String(), "\n"))
}

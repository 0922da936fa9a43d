package commands

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/npmpath/pkg/cobrax/topics"
	"github.com/arthur-debert/npmpath/pkg/style"
)

//go:embed topics/*.md
var topicFiles embed.FS

// topicRenderer picks a glamour style from the command's output at render
// time, so redirected help stays free of escape codes
type topicRenderer struct {
	cmd *cobra.Command
}

func (r topicRenderer) Render(content string, format string) string {
	g := topics.NewGlamourRenderer()
	if style.DetectFormat(r.cmd.OutOrStdout()) == style.FormatPlain {
		g.Style = "notty"
	}
	return g.Render(content, format)
}

// installHelpTopics serves the embedded topics through `help <topic>`
func installHelpTopics(root *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	m, err := topics.New(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer{cmd: root},
	})
	if err != nil {
		return err
	}
	topics.Install(root, m)
	return nil
}

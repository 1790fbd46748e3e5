package tui

import "strings"

// confirmOverlay is a small in-page yes/no prompt rendered on top of the
// owning screen's content. The owner interprets the answer.
type confirmOverlay struct {
	prompt string
	active bool
}

func (c *confirmOverlay) open(prompt string) {
	c.prompt = prompt
	c.active = true
}

func (c *confirmOverlay) close() {
	c.active = false
}

// handleKey consumes y/n/esc while the overlay is active. The second return
// value reports whether the key was handled.
func (c *confirmOverlay) handleKey(key string) (confirmed, handled bool) {
	if !c.active {
		return false, false
	}
	switch key {
	case "y":
		c.close()
		return true, true
	case "n", "esc":
		c.close()
		return false, true
	}
	return false, true
}

func (c *confirmOverlay) render() string {
	var b strings.Builder
	b.WriteString(c.prompt)
	b.WriteString("\n\n")
	b.WriteString("y: yes │ n: no")
	return overlayBoxStyle.Render(b.String())
}

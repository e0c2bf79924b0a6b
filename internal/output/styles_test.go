package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Your plugin is ready!")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Your plugin is ready!")
}

func TestFormatBanner(t *testing.T) {
	out := FormatBanner("WordPress plugin generator")
	assert.Contains(t, out, "WordPress plugin generator")
}

func TestFormatList(t *testing.T) {
	out := FormatList([]string{"cron", "widget"})
	assert.Contains(t, out, "cron")
	assert.Contains(t, out, "widget")
	assert.Contains(t, out, ", ")

	assert.Empty(t, FormatList(nil))
}

func TestGetStyles(t *testing.T) {
	styles := GetStyles()
	assert.True(t, styles.Bold.GetBold())
	assert.Equal(t, ColorDimGray, styles.Muted.GetForeground())
}

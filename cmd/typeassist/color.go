package main

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

func paint(enabled bool, color, text string) string {
	if !enabled {
		return text
	}
	return color + text + colorReset
}

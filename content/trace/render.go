package trace

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))
)

// Render 输出表格以及 force、speed 随事件变化的曲线
func Render(w io.Writer, s *Script, frames []Frame) error {
	fmt.Fprintln(w, titleStyle.Render("joystick trace"))
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf(
		"base (%.1f, %.1f)  diameter %.1f  events %d  speed %.1f..%.1f",
		s.Base.X, s.Base.Y, s.Diameter, len(frames), s.MinSpeed, s.MaxSpeed,
	)))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tEVENT\tPOINTER\tSTATE\tANGLE\tDIST\tFORCE\tNUB\tVELOCITY")
	for _, f := range frames {
		pointer := "-"
		if f.Event.Type != EventUp {
			pointer = fmt.Sprintf("(%.1f, %.1f)", f.Event.X, f.Event.Y)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%.1f\t%.3f\t(%.1f, %.1f)\t(%.1f, %.1f)\n",
			f.Index, f.Event.Type, pointer, f.State, f.Angle, f.Distance, f.Force,
			f.Nub[0], f.Nub[1], f.Velocity[0], f.Velocity[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// asciigraph 至少需要两个点
	if len(frames) < 2 {
		return nil
	}

	force := make([]float64, len(frames))
	speed := make([]float64, len(frames))
	for i, f := range frames {
		force[i] = f.Force
		speed[i] = f.Speed()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(force,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("force"),
	))
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(speed,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("speed"),
	))

	return nil
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"virtual-joystick/content/config"
	"virtual-joystick/content/trace"
)

var (
	configFile string
	joystickX  float64
	joystickY  float64
	diameter   float64
	limit      float64
	maxSpeed   float64
	debug      bool
)

func Init() {
	InitImage()
	InitFont()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "joystick",
		Short: "virtual on-screen joystick demo",
		RunE:  runPlay,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "steer a runner with the virtual joystick",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [script]",
		Short: "replay a yaml pointer script and print the joystick output",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}

	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "settings file path (yaml)")
		cmd.Flags().Float64Var(&joystickX, "x", 0, "joystick base x")
		cmd.Flags().Float64Var(&joystickY, "y", 0, "joystick base y")
		cmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "joystick base diameter")
		cmd.Flags().Float64Var(&limit, "limit", 0, "nub travel radius (0 = diameter/2)")
		cmd.Flags().Float64Var(&maxSpeed, "max-speed", config.DefaultMaxSpeed, "speed at full force (px/s)")
		cmd.Flags().BoolVar(&debug, "debug", false, "log joystick state changes")
	}

	rootCmd.AddCommand(playCmd, traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s := config.DefaultSettings()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	// 命令行参数优先于配置文件
	flags := cmd.Flags()
	if flags.Changed("x") {
		s.Joystick.X = joystickX
		s.Joystick.Anchor = nil
	}
	if flags.Changed("y") {
		s.Joystick.Y = joystickY
		s.Joystick.Anchor = nil
	}
	if flags.Changed("diameter") {
		s.Joystick.Diameter = diameter
	}
	if flags.Changed("limit") {
		s.Joystick.Limit = limit
	}
	if flags.Changed("max-speed") {
		s.Joystick.MaxSpeed = maxSpeed
	}
	if flags.Changed("debug") {
		s.Debug = debug
	}

	for _, field := range s.Validate() {
		log.Printf("invalid %s, using default", field)
	}

	return s, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	Init()
	ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
	ebiten.SetWindowTitle("Virtual Joystick (Ebitengine Demo)")
	if err := ebiten.RunGame(NewGame(s)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	script, err := trace.LoadScript(args[0])
	if err != nil {
		return err
	}
	frames, err := trace.Replay(script)
	if err != nil {
		return fmt.Errorf("replay %s: %w", args[0], err)
	}
	return trace.Render(cmd.OutOrStdout(), script, frames)
}

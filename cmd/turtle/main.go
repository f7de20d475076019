package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"turtlegraphics/internal/canvas"
	"turtlegraphics/internal/console"
	"turtlegraphics/internal/interpreter"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	def := interpreter.DefaultOptions()
	width := flag.Int("width", envInt("TURTLE_WIDTH", def.Width), "Canvas width in pixels (or set TURTLE_WIDTH)")
	height := flag.Int("height", envInt("TURTLE_HEIGHT", def.Height), "Canvas height in pixels (or set TURTLE_HEIGHT)")
	script := flag.String("script", "", "Run the commands in this file and exit")
	out := flag.String("out", "", "Save the drawing here after -script (.png, .bmp, .tiff, .svg)")
	yes := flag.Bool("yes", false, "Allow clear/reset to discard unsaved work when nobody can be asked")
	verbose := flag.Bool("v", false, "Verbose logging")
	bgName := flag.String("bg", "black", "Background colour name")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Turtle Graphics - draw by typing commands

Usage:
  turtle [options]                  interactive session on stdin
  turtle -script file.txt [options] run a command file

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  turtle
  turtle -script rings.txt -out rings.png
  echo "square 100" | turtle -yes

Environment:
  TURTLE_WIDTH, TURTLE_HEIGHT - canvas size when -width/-height are not given

Exit status:
  0 success, 1 usage, input or file error, 2 a script command failed
`)
	}
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	bg, err := canvasOptions(*bgName, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	policy := interpreter.Deny
	if *yes {
		policy = interpreter.Allow
	}
	interactive := *script == "" && console.IsTerminal(os.Stdin.Fd())

	opts := def
	opts.Width, opts.Height = *width, *height
	opts.Background = bg
	opts.ScriptPolicy = policy
	opts.Sink = interpreter.WriterSink{W: os.Stdout}
	opts.Logger = logger
	if interactive {
		opts.Confirm = console.NewPrompter(os.Stdout, logger)
	}

	s := interpreter.NewSession(opts)
	defer s.Close()
	logger.Info("Application started", "width", *width, "height", *height, "interactive", interactive, "policy", policy.String())

	if *script != "" {
		return batch(s, *script, *out, logger)
	}
	return repl(s, os.Stdin, os.Stdout, interactive, logger)
}

// batch runs a script file, optionally saves the result and prints the
// final pose.
func batch(s *interpreter.Session, script, out string, logger *slog.Logger) int {
	failed, err := s.RunFile(script)
	if err != nil {
		logger.Error("run script", "path", script, "err", err)
		return 1
	}
	if out != "" {
		path := canvas.WithDefaultExt(out)
		if err := canvas.Save(path, s.Surface); err != nil {
			logger.Error("save drawing", "path", path, "err", err)
			return 1
		}
		fmt.Printf("Drawing saved as %s\n", path)
	}
	interpreter.Display(os.Stdout, s.Turtle.State())
	if failed > 0 {
		logger.Info("script had failures", "path", script, "failed", failed)
		return 2
	}
	return 0
}

func repl(s *interpreter.Session, in io.Reader, out io.Writer, interactive bool, logger *slog.Logger) int {
	fmt.Fprintln(out, interpreter.Welcome)
	scanner := bufio.NewScanner(in)
	for !s.Done() {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		// Rejections are already reported through the sink.
		s.Exec(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read input", "err", err)
		return 1
	}
	if interactive && !s.Done() {
		fmt.Fprintln(out)
	}
	return 0
}

// canvasOptions checks the -bg colour name and the canvas size.
func canvasOptions(bgName string, width, height int) (color.RGBA, error) {
	bg, ok := colornames.Map[strings.ToLower(bgName)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown background colour %q", bgName)
	}
	if width <= 0 || height <= 0 {
		return color.RGBA{}, fmt.Errorf("canvas size %dx%d must be positive", width, height)
	}
	return bg, nil
}

func envInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}

package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultTimeFmt = "2006-01-02 15:04:05"

const envHelp = `
Environment:
  NLS_TIMEFMT   Go time layout for the modification time column
                (default: 2006-01-02 15:04:05)
  NLS_COLOR     default for --color
  NLS_ALL       if set to a true value, enables -a by default
`

type options struct {
	all     bool
	long    bool
	human   bool
	reverse bool
	tree    bool
	bySize  bool
	byTime  bool
	sort    sortBy
	depth   int
	ignore  []string
	debug   bool

	colorWhen string
	color     bool
	timeFmt   string
	termWidth int
}

// defaultOptions returns the options that hold before flags are parsed.
func defaultOptions() *options {
	o := &options{
		depth:     defaultMaxDepth,
		colorWhen: cmp.Or(os.Getenv("NLS_COLOR"), "auto"),
		timeFmt:   cmp.Or(os.Getenv("NLS_TIMEFMT"), defaultTimeFmt),
	}
	o.all, _ = strconv.ParseBool(os.Getenv("NLS_ALL"))
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	o.termWidth = cmp.Or(width, 80) // Fallback for non-terminal output etc.
	return o
}

// finish validates o and resolves derived settings.
func (o *options) finish() error {
	if o.depth < 0 {
		return errors.New("depth must not be negative")
	}
	switch {
	case o.bySize:
		o.sort = sortSize
	case o.byTime:
		o.sort = sortTime
	}
	switch o.colorWhen {
	case "auto":
		o.color = !color.NoColor
	case "always":
		o.color = true
	case "never":
		o.color = false
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always, or never", o.colorWhen)
	}
	return nil
}

func (o *options) mode() renderMode {
	switch {
	case o.tree:
		return modeTree
	case o.long:
		return modeLong
	default:
		return modeNames
	}
}

// newRootCmd builds the nls command listing paths of fsys to out.
func newRootCmd(fsys afero.Fs, out io.Writer) *cobra.Command {
	o := defaultOptions()

	cmd := &cobra.Command{
		Use:           progName + " [flags] [path]",
		Short:         "List directory contents",
		Long:          "nls - list files and directories with type, permission and ownership details",
		Version:       version(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), o.debug)
			return o.finish()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return run(fsys, out, o, target)
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&o.long, "long", "l", false, "show details of files and directories")
	fl.BoolVarP(&o.all, "all", "a", o.all, "show hidden files and directories")
	fl.BoolVarP(&o.human, "human-readable", "H", false, "show human readable file sizes")
	fl.BoolVarP(&o.bySize, "size", "s", false, "sort by file size")
	fl.BoolVarP(&o.byTime, "time", "t", false, "sort by modified time")
	fl.VarP(&o.sort, "sort", "", "one of: name, size, time")
	fl.BoolVarP(&o.reverse, "reverse", "r", false, "reverse sort")
	fl.BoolVarP(&o.tree, "tree", "T", false, "show files and directories as a tree")
	fl.IntVarP(&o.depth, "depth", "d", o.depth, "set the depth of the tree")
	fl.StringArrayVarP(&o.ignore, "ignore", "I", nil, "do not list entries matching the glob `PATTERN`")
	fl.StringVar(&o.colorWhen, "color", o.colorWhen, "colorize names: auto, always, or never")
	fl.BoolVar(&o.debug, "debug", false, "write debug logs to stderr")
	fl.BoolP("version", "V", false, "show version and exit")

	cmd.SetOut(out)
	cmd.SetUsageTemplate(cmd.UsageTemplate() + envHelp)
	return cmd
}

func setupLogging(w io.Writer, debugLog bool) {
	level := slog.LevelWarn
	if debugLog {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return bi.Main.Version
}

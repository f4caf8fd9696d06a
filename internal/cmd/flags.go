package cmd

import (
	"github.com/spf13/pflag"
)

// Flag declares one command-line flag together with its completion behavior.
type Flag struct {
	Long  string
	Short string
	Usage string

	// TakesValue registers a string flag instead of a boolean switch.
	// Its zero value means "not set"; defaults come from the config file.
	TakesValue bool

	// Terminal flags are followed by task names only in the completion script.
	Terminal bool

	// Completable flags are offered by the completion script.
	Completable bool
}

// Names returns the spellings of f as typed on the command line.
func (f Flag) Names() []string {
	if f.Short == "" {
		return []string{"--" + f.Long}
	}
	return []string{"-" + f.Short, "--" + f.Long}
}

const (
	flagVersion    = "version"
	flagList       = "list"
	flagTime       = "time"
	flagCompletion = "completion"
	flagHelp       = "help"
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
)

// Flags is the full flag set of the vstask command. Both the argument parser
// and the completion script are built from it.
var Flags = []Flag{
	{Long: flagVersion, Usage: "print version information", Terminal: true, Completable: true},
	{Long: flagList, Short: "l", Usage: "list available tasks", Terminal: true, Completable: true},
	{Long: flagTime, Short: "t", Usage: "print runtime information", Completable: true},
	{Long: flagCompletion, Usage: "bash tab-completion; usage: source <(vstask --completion)"},
	{Long: flagHelp, Short: "h", Usage: "show this help message and exit", Terminal: true},
	{Long: flagConfig, TakesValue: true, Usage: "config file (default ~/.vstask/config.yaml)"},
	{Long: flagLogLevel, TakesValue: true, Usage: "log level: debug, info, warn, error (default warn)"},
	{Long: flagLogFormat, TakesValue: true, Usage: "log format: text, json (default text)"},
}

func registerFlags(fs *pflag.FlagSet, flags []Flag) {
	for _, f := range flags {
		if f.TakesValue {
			fs.StringP(f.Long, f.Short, "", f.Usage)
			continue
		}
		fs.BoolP(f.Long, f.Short, false, f.Usage)
	}
}

// options holds the parsed flag values of one invocation.
type options struct {
	version    bool
	list       bool
	time       bool
	completion bool

	configPath string
	logLevel   string
	logFormat  string
}

func parseOptions(fs *pflag.FlagSet) (options, error) {
	var (
		opts options
		err  error
	)
	bools := []struct {
		name string
		dst  *bool
	}{
		{flagVersion, &opts.version},
		{flagList, &opts.list},
		{flagTime, &opts.time},
		{flagCompletion, &opts.completion},
	}
	for _, b := range bools {
		if *b.dst, err = fs.GetBool(b.name); err != nil {
			return opts, err
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{flagConfig, &opts.configPath},
		{flagLogLevel, &opts.logLevel},
		{flagLogFormat, &opts.logFormat},
	}
	for _, s := range strs {
		if *s.dst, err = fs.GetString(s.name); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

package main

import (
	"flag"
	"io"
	"kkokgoMerge/internal/mergeschool"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Define command line arguments
type cmdArgs struct {
	configPath string
	dataDir    string
	outputFile string
	debug      bool
	silent     bool
}

func parseArgs(args []string, errOut io.Writer) (*cmdArgs, error) {
	a := new(cmdArgs)
	fs := flag.NewFlagSet("mergeschool", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&a.configPath, "c", "", "Path to the configuration file")
	fs.StringVar(&a.dataDir, "d", "", "Path to the data directory")
	fs.StringVar(&a.outputFile, "o", "", "Output file name, relative to the data directory")
	fs.BoolVar(&a.debug, "debug", false, "Enable debug mode")
	fs.BoolVar(&a.silent, "silent", false, "Enable silent mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a, nil
}

func setLogLevel(a *cmdArgs) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if a.debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if a.silent {
		logrus.SetLevel(logrus.ErrorLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// buildOptions layers defaults, the config file and flags, later ones
// winning.
func buildOptions(a *cmdArgs) (mergeschool.Options, error) {
	opts := mergeschool.DefaultOptions()
	if err := loadEnvFile(); err != nil {
		return opts, err
	}
	if a.configPath != "" {
		c, err := loadConfig(a.configPath)
		if err != nil {
			return opts, err
		}
		c.apply(&opts)
	}
	if a.dataDir != "" {
		opts.DataDir = a.dataDir
	}
	if a.outputFile != "" {
		opts.OutputFile = a.outputFile
	}
	return opts, nil
}

// runMain runs one merge and returns the process exit code.
func runMain(args []string, out, errOut io.Writer) int {
	a, err := parseArgs(args, errOut)
	if err != nil {
		return 1
	}
	setLogLevel(a)

	rep := mergeschool.NewConsoleReporter(out)
	opts, err := buildOptions(a)
	if err != nil {
		logrus.WithField("configPath", a.configPath).WithError(err).Error("Failed to load configuration")
		rep.Failed(err)
		return 1
	}

	logrus.Info("Starting application")
	res, err := mergeschool.NewMerger(opts, rep).Run()
	if err != nil {
		logrus.WithError(err).Error("Application encountered an error")
		rep.Failed(err)
		return 1
	}

	logrus.WithFields(logrus.Fields{
		"output": res.OutputPath,
		"rows":   res.Rows,
	}).Info("Application finished successfully")
	return 0
}

func main() {
	code := 1
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 1024)
			n := runtime.Stack(buf, false)
			logrus.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(buf[:n]),
			}).Error("A panic occurred")
		}
		os.Exit(code)
	}()

	code = runMain(os.Args[1:], os.Stdout, os.Stderr)
}

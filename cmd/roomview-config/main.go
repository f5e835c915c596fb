// Command roomview-config provisions roomview credentials and applies
// configuration to the local system.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/roomview/roomview/rvconf"
	"github.com/roomview/roomview/rvdef"
	"github.com/roomview/roomview/rvmanage"
	"github.com/roomview/roomview/rvnotify"
	"github.com/roomview/roomview/rvstore"
	"github.com/roomview/roomview/rvsys"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	mode := os.Args[1]
	args := os.Args[2:]

	var err error
	switch mode {
	case "createkeypair":
		err = runCreateKeyPair(args)
	case "importkey":
		err = runImportKey(args)
	case "apply":
		err = runApply(args)
	case "list":
		err = runList(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode: %s\n", mode)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: roomview-config <mode> [options]

Modes:
  createkeypair   Generate a key pair for a role
  importkey       Import a public key file for a role
  apply           Apply a configuration file to this system
  list            Print the stored configuration as path=value lines

Run 'roomview-config <mode> -h' for mode-specific options.
`)
}

// notifier builds the notification sink used by all modes. Silent mode
// keeps the log output and drops the interactive surfacing.
func notifier(silent bool) rvnotify.Notifier {
	return &rvnotify.LogNotifier{
		Silent: silent,
		Interactive: func(level rvnotify.Level, title, msg string) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n\n%s\n", level, title, msg)
		},
	}
}

func parseRoleArg(fs *flag.FlagSet) (rvdef.Role, error) {
	name := fs.Arg(0)
	if name == "" {
		return 0, fmt.Errorf("missing role argument (one of: teacher, admin, support, other)")
	}
	role, ok := rvdef.ParseRole(name)
	if !ok {
		return 0, fmt.Errorf("unknown role %q (one of: teacher, admin, support, other)", name)
	}
	return role, nil
}

func runCreateKeyPair(args []string) error {
	fs := flag.NewFlagSet("createkeypair", flag.ExitOnError)
	dir := fs.String("dir", "", "Destination key directory (default: platform key directory)")
	silent := fs.Bool("silent", false, "Suppress interactive notices")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roomview-config createkeypair [options] <role>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	role, err := parseRoleArg(fs)
	if err != nil {
		return err
	}
	return rvmanage.NewProvisioner(notifier(*silent)).CreateKeyPair(role, *dir)
}

func runImportKey(args []string) error {
	fs := flag.NewFlagSet("importkey", flag.ExitOnError)
	dir := fs.String("dir", "", "Destination key directory (default: platform key directory)")
	silent := fs.Bool("silent", false, "Suppress interactive notices")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roomview-config importkey [options] <role> <keyfile>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	role, err := parseRoleArg(fs)
	if err != nil {
		return err
	}
	source := fs.Arg(1)
	if source == "" {
		return fmt.Errorf("missing public key file argument")
	}
	return rvmanage.NewProvisioner(notifier(*silent)).ImportPublicKey(role, source, *dir)
}

func openSystemStore(profile, path string) (*rvstore.BoltStore, error) {
	return rvstore.OpenBolt(rvstore.Options{
		Scope:   rvstore.ScopeSystem,
		Profile: profile,
		Path:    path,
	})
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	silent := fs.Bool("silent", false, "Suppress interactive notices")
	profile := fs.String("profile", "", "Install profile name")
	storePath := fs.String("store", "", "Configuration database path override")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roomview-config apply [options] <configfile>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	configFile := fs.Arg(0)
	if configFile == "" {
		return fmt.Errorf("missing configuration file argument")
	}

	incoming, err := rvstore.NewTextStore(configFile).Load()
	if err != nil {
		return fmt.Errorf("read configuration file: %w", err)
	}

	store, err := openSystemStore(*profile, *storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	current, err := store.Load()
	if err != nil {
		return fmt.Errorf("load stored configuration: %w", err)
	}

	applier := rvmanage.NewApplier(rvmanage.ApplierConfig{
		Tree:     current,
		Modifier: rvsys.New(),
		Store:    store,
		Notifier: notifier(*silent),
	})

	report := applier.Apply(incoming)
	if failed := report.Failed(); len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "apply completed with %d failed action(s):\n", len(failed))
		for _, o := range failed {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", o.Action, o.Detail)
		}
	}
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	profile := fs.String("profile", "", "Install profile name")
	storePath := fs.String("store", "", "Configuration database path override")
	export := fs.String("export", "", "Also export the configuration to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openSystemStore(*profile, *storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	tree, err := store.Load()
	if err != nil {
		return fmt.Errorf("load stored configuration: %w", err)
	}

	if err := rvmanage.ListConfiguration(os.Stdout, tree); err != nil {
		return err
	}
	if *export != "" {
		return exportTree(*export, tree)
	}
	return nil
}

func exportTree(path string, tree *rvconf.Tree) error {
	return rvstore.NewTextStore(path).Flush(tree)
}

// Command mrbtctl builds a Merkle Red-Black Tree from a toml
// configuration, optionally applies a seed script of operations to it,
// and prints the resulting root digest.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mrbt-go/mrbt/cli"
	"github.com/mrbt-go/mrbt/config"
	"github.com/mrbt-go/mrbt/merkletree"
	"github.com/mrbt-go/mrbt/mrbtlog"
	"github.com/spf13/cobra"
)

const appName = "mrbtctl"

var configPath string
var verifyKey int64

func main() {
	rootCmd := cli.NewRootCommand(appName, "mrbtctl manages a Merkle Red-Black Tree.",
		"mrbtctl builds, seeds and inspects a Merkle Red-Black Tree from a toml configuration file.")

	initCmd := cli.NewInitCommand(appName, runInit)
	initCmd.Flags().StringVar(&configPath, "config", "mrbt.toml", "path to write the configuration file to")

	runCmd := cli.NewRunCommand(appName,
		"Build a tree from the configuration, apply its seed script, and print the root digest.",
		runRun)
	runCmd.Flags().StringVar(&configPath, "config", "mrbt.toml", "path to the configuration file")
	runCmd.Flags().Int64Var(&verifyKey, "verify", 0, "print a verification object for this key after seeding")

	versionCmd := cli.NewVersionCommand(appName)

	rootCmd.AddCommand(initCmd, runCmd, versionCmd)
	cli.ExecuteRoot(rootCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	if err := config.Default().Save(configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("wrote configuration to " + configPath)
}

func runRun(cmd *cobra.Command, args []string) {
	conf, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mrbtlog.Init(&conf.Logger)
	log := mrbtlog.Get()

	tr := merkletree.New(merkletree.WithHash(conf.HashName))
	for _, op := range conf.Script {
		switch op.Kind {
		case "insert":
			tr.Insert(op.Key, op.Value)
		case "set":
			tr.Set(op.Key, op.Value)
		case "upsert":
			tr.Upsert(op.Key, op.Value)
		case "delete":
			tr.Delete(op.Key)
		}
	}
	log.Info("seed script applied", "operations", len(conf.Script), "size", tr.Size())

	if err := tr.CheckInvariants(); err != nil {
		log.Error("tree failed its own invariant check", "error", err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	digest := tr.Digest()
	fmt.Printf("size: %d\n", tr.Size())
	fmt.Printf("digest.A: %x\n", digest.A)
	fmt.Printf("digest.B: %x\n", digest.B)

	if cmd.Flags().Changed("verify") {
		value, present, vo := tr.GetAuthenticated(verifyKey)
		fmt.Printf("key %d present: %v\n", verifyKey, present)
		if present {
			fmt.Printf("value: %v\n", value)
		}
		fmt.Printf("path length: %d\n", len(vo.Path))
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%+v", vo)
		fmt.Println(buf.String())
	}
}

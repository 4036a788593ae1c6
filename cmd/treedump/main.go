package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rbtree"
)

var rootCmd = &cobra.Command{
	Use:   "treedump [ops...]",
	Short: "apply insert/delete/search ops to a red-black tree and dump it",
	Long: `treedump builds a red-black tree from a sequence of operations and
prints a diagnostic traversal. Operations are of the form insert:N,
delete:N, or search:N, with N an integer. A bare integer is shorthand
for insert:N.

Example:

  treedump insert:10 insert:20 insert:30 delete:20 --traverse breadth`,
	SilenceUsage: true,
	Args:         cobra.MinimumNArgs(1),
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("traverse", "inorder", "traversal to print: inorder or breadth")
	rootCmd.Flags().Bool("verify", true, "scan the tree invariants after applying all ops")
	rootCmd.Flags().Bool("debug", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		log.SetLevel(log.DebugLevel)
	}

	tree := rbtree.NewOrdered[int]()
	for _, arg := range args {
		if err := apply(tree, arg); err != nil {
			return err
		}
	}

	traverse, _ := cmd.Flags().GetString("traverse")
	switch traverse {
	case "inorder":
		if err := tree.FprintInorder(os.Stdout); err != nil {
			return err
		}
	case "breadth":
		if err := tree.FprintBreadth(os.Stdout); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown traversal %q (want inorder or breadth)", traverse)
	}

	fmt.Printf("size=%d height=%d black-height=%d\n",
		tree.Size(), tree.Height(), tree.BlackHeight())

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		if err := tree.Verify(); err != nil {
			return errors.Wrap(err, "invariant scan failed")
		}
		log.Debug("invariant scan passed")
	}
	return nil
}

func apply(tree *rbtree.Tree[int], arg string) error {
	op, rest, found := strings.Cut(arg, ":")
	if !found {
		op, rest = "insert", arg
	}

	v, err := strconv.Atoi(rest)
	if err != nil {
		return errors.Wrapf(err, "bad operand in %q", arg)
	}

	switch op {
	case "insert":
		tree.Insert(v)
		log.Debugf("insert %d", v)
	case "delete":
		if !tree.Delete(v) {
			log.Warnf("delete %d: not found", v)
		}
	case "search":
		if n := tree.Search(v); n != nil {
			fmt.Printf("search %d: found (%s)\n", v, n.Color())
		} else {
			fmt.Printf("search %d: not found\n", v)
		}
	default:
		return errors.Errorf("unknown op %q in %q", op, arg)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

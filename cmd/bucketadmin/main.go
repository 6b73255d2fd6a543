// Command bucketadmin runs the administrative helpers from the command line:
// uploading files and directories to the bucket, clearing and moving prefixes,
// and cleaning local data directories.
//
// Settings come from an optional YAML file (AK_ADMIN_CONFIG, default
// "admin.yaml") plus AK_ADMIN_* environment overrides.
package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/rs/zerolog"

	admin "github.com/RobertLJordan/ak-energy-admin"
	"github.com/RobertLJordan/ak-energy-admin/config"
	"github.com/RobertLJordan/ak-energy-admin/dataset"
	"github.com/RobertLJordan/ak-energy-admin/localdir"
	"github.com/RobertLJordan/ak-energy-admin/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	cfgPath := os.Getenv("AK_ADMIN_CONFIG")
	if cfgPath == "" {
		cfgPath = "admin.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	log := logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	ctx := context.Background()

	switch cmd {
	case "version":
		fmt.Println("bucketadmin 0.1.0")
	case "clean-dir":
		if len(args) != 1 {
			usage("bucketadmin clean-dir <dir>")
		}
		cleaner := localdir.NewCleaner(billy.NewBaseOSFS(), log)
		if err := cleaner.Clear(args[0]); err != nil {
			fatal(err)
		}
	case "save-demo":
		if len(args) != 1 {
			usage("bucketadmin save-demo <base-path>")
		}
		if err := saveDemo(args[0], log); err != nil {
			fatal(err)
		}
	case "upload", "upload-dir", "clear-prefix", "move", "list":
		client, err := newClient(cfg, log)
		if err != nil {
			fatal(err)
		}
		if err := runBucketCommand(ctx, client, cmd, args); err != nil {
			fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func newClient(cfg *config.Config, log zerolog.Logger) (*admin.Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("no bucket configured: set \"bucket\" in the config file or AK_ADMIN_BUCKET")
	}
	opts := []admin.Option{
		admin.WithLogger(log),
	}
	if cfg.Region != "" {
		opts = append(opts, admin.WithRegion(cfg.Region))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, admin.WithEndpoint(cfg.Endpoint))
	}
	if cfg.ForcePathStyle {
		opts = append(opts, admin.WithForcePathStyle(true))
	}
	return admin.New(cfg.Bucket, opts...)
}

func runBucketCommand(ctx context.Context, client *admin.Client, cmd string, args []string) error {
	switch cmd {
	case "upload":
		if len(args) != 2 {
			usage("bucketadmin upload <local-path> <dest-key>")
		}
		return client.UploadFile(ctx, args[0], args[1])
	case "upload-dir":
		if len(args) < 2 || len(args) > 3 {
			usage("bucketadmin upload-dir <local-dir> <dest-prefix> [--clear]")
		}
		return client.UploadDir(ctx, args[0], args[1], hasFlag(args, "--clear"))
	case "clear-prefix":
		if len(args) != 1 {
			usage("bucketadmin clear-prefix <prefix>")
		}
		return client.ClearPrefix(ctx, args[0])
	case "move":
		if len(args) < 2 || len(args) > 3 {
			usage("bucketadmin move <src-prefix> <dest-prefix> [--clear-dest]")
		}
		return client.MovePrefix(ctx, args[0], args[1], hasFlag(args, "--clear-dest"))
	case "list":
		if len(args) != 1 {
			usage("bucketadmin list <prefix>")
		}
		keys, err := client.ListPrefix(ctx, args[0])
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

// saveDemo writes a small sample dataset to basePath in both formats, as a
// quick check of paths and permissions before pointing real exports there.
func saveDemo(basePath string, log zerolog.Logger) error {
	ds := dataset.New("ts", "price")
	for i, price := range []float64{41.2, 39.8, math.NaN(), 43.1} {
		if err := ds.Append(dataset.Number(float64(i)), dataset.Number(price)); err != nil {
			return err
		}
	}
	p := dataset.NewPersister(billy.NewBaseOSFS(), log)
	return p.Persist(ds, basePath)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func usage(text string) {
	fmt.Fprintf(os.Stderr, "Usage: %s\n", text)
	os.Exit(1)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`bucketadmin - data file administration

Usage:
  bucketadmin upload <local-path> <dest-key>
  bucketadmin upload-dir <local-dir> <dest-prefix> [--clear]
  bucketadmin clear-prefix <prefix>
  bucketadmin move <src-prefix> <dest-prefix> [--clear-dest]
  bucketadmin list <prefix>
  bucketadmin clean-dir <dir>
  bucketadmin save-demo <base-path>
  bucketadmin version

Configuration is read from admin.yaml (or AK_ADMIN_CONFIG) with
AK_ADMIN_* environment overrides. The bucket name must be set via
the "bucket" key or AK_ADMIN_BUCKET.`)
}

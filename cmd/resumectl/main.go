// Command resumectl inspects and edits the configured resume store without
// going through the HTTP API. It reads the same environment as the server.
//
//	resumectl list
//	resumectl get <id>
//	resumectl save <file.json|->
//	resumectl delete <id>
//	resumectl enhance <section> <text...>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/resumeeditor/resume-editor/backend/go-services/internal/config"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/enhance"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/service"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/server"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/validation"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
)

var errUsage = errors.New("usage: resumectl [-timeout d] list | get <id> | save <file|-> | delete <id> | enhance <section> <text...>")

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline for the command")
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, errUsage)
		os.Exit(2)
	}

	// the store is not needed to enhance text
	if args[0] == "enhance" {
		if err := run(context.Background(), nil, args, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.SetOutput(os.Stderr)
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	// rate limiting is an HTTP concern
	cfg.RateLimit.Enabled = false

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	deps, err := server.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open resume store: %v", err)
	}
	defer deps.Close()

	if err := run(ctx, deps.Service, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		deps.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, svc service.Service, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		list, err := svc.List(ctx)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(list))
		for id := range list {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return list[ids[i]].CreatedAt.Before(list[ids[j]].CreatedAt) })
		for _, id := range ids {
			s := list[id]
			fmt.Fprintf(out, "%s\t%s\t%s\n", id, s.CreatedAt.Format(time.RFC3339), s.PersonalInfo.Name)
		}
		return nil
	case "get":
		if len(rest) != 1 {
			return errUsage
		}
		rec, err := svc.Get(ctx, rest[0])
		if err != nil {
			return fmt.Errorf("get %s: %w", rest[0], err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "save":
		if len(rest) != 1 {
			return errUsage
		}
		body, err := readInput(rest[0], in)
		if err != nil {
			return err
		}
		var r resume.Resume
		if err := validation.Decode(validation.Resume, body, &r); err != nil {
			return err
		}
		id, err := svc.Save(ctx, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
		return nil
	case "delete":
		if len(rest) != 1 {
			return errUsage
		}
		if err := svc.Delete(ctx, rest[0]); err != nil {
			return fmt.Errorf("delete %s: %w", rest[0], err)
		}
		fmt.Fprintf(out, "deleted %s\n", rest[0])
		return nil
	case "enhance":
		if len(rest) < 1 {
			return errUsage
		}
		fmt.Fprintln(out, enhance.Enhance(rest[0], strings.Join(rest[1:], " ")))
		return nil
	default:
		return errUsage
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

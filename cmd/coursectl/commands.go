package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/coursework-hub/instructor-dashboard/config"
	"github.com/coursework-hub/instructor-dashboard/internal/course/client"
	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

var errUsage = errors.New(usage)

// newClient is replaced in tests.
var newClient = func() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.App.Environment, cfg.App.LogLevel)
	return client.New(cfg.CourseAPI.BaseURL,
		client.WithTimeouts(cfg.CourseAPI.Timeout, cfg.CourseAPI.UploadTimeout),
		client.WithRateLimit(cfg.CourseAPI.RateLimit, cfg.CourseAPI.Burst),
	), nil
}

func need(args []string, n int) error {
	if len(args) < n {
		return errUsage
	}
	return nil
}

func run(cmd string, args []string, out io.Writer) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	switch cmd {
	case "units":
		units, err := c.ListUnits(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "CODE\tNAME\tDESCRIPTION")
		for _, u := range units {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.UnitCode, u.UnitName, u.Description)
		}

	case "projects":
		if err := need(args, 1); err != nil {
			return err
		}
		projects, err := c.ListProjects(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "ID\tNAME")
		for _, p := range projects {
			fmt.Fprintf(tw, "%d\t%s\n", p.ProjectID, p.DisplayName())
		}

	case "submissions":
		if err := need(args, 2); err != nil {
			return err
		}
		subs, err := c.ListSubmissions(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "ID\tFILE\tSTATUS")
		for _, s := range subs {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", s.SubmissionID, s.SubmissionFileName, s.SubmissionStatus)
		}

	case "upload":
		if err := need(args, 3); err != nil {
			return err
		}
		path := args[2]
		if !strings.EqualFold(filepath.Ext(path), ".zip") {
			return domain.ErrNotZip
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := c.UploadSubmission(ctx, args[0], args[1], path, f); err != nil {
			return err
		}
		fmt.Fprintf(tw, "uploaded %s\n", filepath.Base(path))

	case "generate":
		if err := need(args, 3); err != nil {
			return err
		}
		ids := make([]int64, 0, len(args)-2)
		for _, a := range args[2:] {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid submission id %q: %w", a, err)
			}
			ids = append(ids, id)
		}
		doc, err := c.GenerateQuestions(ctx, args[0], args[1], ids)
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case "template":
		if err := need(args, 2); err != nil {
			return err
		}
		doc, err := c.GetQuestionTemplate(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case "students":
		if err := need(args, 1); err != nil {
			return err
		}
		students, err := c.ListStudents(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
		for _, s := range students {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.StudentID, s.Name, s.Email)
		}

	case "collaborators":
		if err := need(args, 1); err != nil {
			return err
		}
		tas, err := c.ListCollaborators(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "EMAIL\tNAME")
		for _, ta := range tas {
			fmt.Fprintf(tw, "%s\t%s\n", ta.Email, ta.Name)
		}

	default:
		return fmt.Errorf("unknown command: %s\n%w", cmd, errUsage)
	}
	return nil
}

func printJSON(out io.Writer, doc domain.Document) error {
	if len(doc) == 0 {
		_, err := fmt.Fprintln(out, "null")
		return err
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		_, err = fmt.Fprintln(out, string(doc))
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

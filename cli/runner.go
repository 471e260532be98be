package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/plieapp/plie/client"
	"github.com/plieapp/plie/client/auth/transport"
	"github.com/plieapp/plie/export"
	"github.com/plieapp/plie/internal/config"
)

// Run parses args and executes one pliectl command.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}
	if options.URL != "" {
		cfg.BaseURL = options.URL
	}
	if options.SessionFile != "" {
		cfg.SessionFile = options.SessionFile
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if options.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	var jar http.CookieJar
	if cfg.SessionFile != "" {
		jar, err = transport.NewFileJar(cfg.SessionFile)
		if err != nil {
			return fmt.Errorf("open session file: %w", err)
		}
	}
	cli, err := client.New(cfg.BaseURL,
		client.WithCookieJar(jar),
		client.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	return dispatch(ctx, cli, options)
}

func dispatch(ctx context.Context, cli *client.Client, options *Options) error {
	rest := options.Args.Rest
	switch options.Args.Command {
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: pliectl login <email> <password>")
		}
		res, err := cli.Auth.Login(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", res.User.Name, res.User.Role)
		return nil
	case "logout":
		cli.Auth.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		user, err := cli.Users.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
		return nil
	case "schedule":
		entries, err := cli.Groups.Schedule(ctx, nil)
		if err != nil {
			return err
		}
		for _, e := range entries {
			hall := "-"
			if e.Hall != nil {
				hall = e.Hall.Name
			}
			fmt.Printf("%-30s %-20s hall=%s %dmin\n", e.GroupName, e.Schedule, hall, e.DurationMinutes)
		}
		return nil
	case "groups":
		groups, err := cli.Groups.Available(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("#%d %-30s %d/%d enrolled, %s\n", g.ID, g.Name, g.Enrolled, g.Capacity, g.Schedule)
		}
		return nil
	case "notifications":
		list, err := cli.Notifications.List(ctx, 20, false)
		if err != nil {
			return err
		}
		for _, n := range list.Notifications {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			fmt.Printf("%s %s: %s\n", marker, n.Title, n.Message)
		}
		fmt.Printf("%d unread\n", list.UnreadCount)
		return nil
	case "export-attendance":
		if len(rest) != 1 {
			return fmt.Errorf("usage: pliectl export-attendance <dest-url>")
		}
		history, err := cli.Students.MyAttendance(ctx)
		if err != nil {
			return err
		}
		if err := export.New().Attendance(ctx, history.Records, rest[0]); err != nil {
			return err
		}
		fmt.Printf("wrote %d records to %s\n", len(history.Records), rest[0])
		return nil
	case "":
		return fmt.Errorf("a command is required, see --help")
	default:
		return fmt.Errorf("unknown command %q", options.Args.Command)
	}
}

// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
	"github.com/shiftaitop/shiftai-go/shiftai"
)

func analyticsCommand() *cli.Command {
	return &cli.Command{
		Name:    "analytics",
		Summary: "Read aggregate analytics and manage feedback",
		Subcommands: []*cli.Command{
			dashboardCommand(),
			topAgentsCommand(),
			topUsersCommand(),
			userAnalyticsCommand(),
			projectAnalyticsCommand(),
			feedbackCommand(),
		},
	}
}

// --- dashboard ---

type dashboardParams struct {
	clientParams
}

func dashboardCommand() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show the tenant-wide metrics snapshot",
		Usage:   "shiftai analytics dashboard",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("dashboard", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			metrics, err := client.Analytics.Dashboard(context.Background())
			if err != nil {
				return err
			}
			return cli.WriteJSON(metrics)
		},
	}
}

// --- top-agents / top-users ---

type topParams struct {
	clientParams
	cli.JSONOutput
	Limit int `flag:"limit,n" desc:"number of rows (1-100, 0 for the endpoint default)"`
}

func topAgentsCommand() *cli.Command {
	var params topParams

	return &cli.Command{
		Name:    "top-agents",
		Summary: "Rank agents by query count",
		Usage:   "shiftai analytics top-agents [--limit N]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("top-agents", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			agents, err := client.Analytics.TopAgents(context.Background(), params.Limit)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(agents); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "RANK\tAGENT\tQUERIES\tSATISFACTION")
			for _, agent := range agents {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
					intOr(agent.Rank, 0),
					stringOr(agent.AgentName, "-"),
					int64Or(agent.QueryCount, 0),
					percentOr(agent.SatisfactionPercentage),
				)
			}
			return tw.Flush()
		},
	}
}

func topUsersCommand() *cli.Command {
	var params topParams

	return &cli.Command{
		Name:    "top-users",
		Summary: "Rank users by activity",
		Usage:   "shiftai analytics top-users [--limit N]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("top-users", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			users, err := client.Analytics.TopUsers(context.Background(), params.Limit)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(users); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "RANK\tUSER\tQUERIES")
			for _, user := range users {
				fmt.Fprintf(tw, "%d\t%s\t%d\n",
					intOr(user.Rank, 0),
					stringOr(user.Username, "-"),
					int64Or(user.QueryCount, 0),
				)
			}
			return tw.Flush()
		},
	}
}

// --- users / project ---

func userAnalyticsCommand() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "users",
		Summary: "Show the per-user analytics table",
		Usage:   "shiftai analytics users",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("users", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			rows, err := client.Analytics.UserAnalytics(context.Background())
			if err != nil {
				return err
			}
			return cli.WriteJSON(rows)
		},
	}
}

func projectAnalyticsCommand() *cli.Command {
	var params topParams

	return &cli.Command{
		Name:    "project",
		Summary: "Show project-level aggregates with top-N activity",
		Usage:   "shiftai analytics project [--limit N]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("project", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			project, err := client.Analytics.ProjectData(context.Background(), params.Limit)
			if err != nil {
				return err
			}
			return cli.WriteJSON(project)
		},
	}
}

// --- feedback ---

type feedbackSubmitParams struct {
	clientParams
	Like         bool   `flag:"like" desc:"mark the reply as helpful"`
	Dislike      bool   `flag:"dislike" desc:"mark the reply as unhelpful"`
	Regeneration bool   `flag:"regeneration" desc:"record that the reply was regenerated"`
	Text         string `flag:"text" desc:"free-text feedback"`
}

func feedbackCommand() *cli.Command {
	var submitParams feedbackSubmitParams
	var getParams dashboardParams

	return &cli.Command{
		Name:    "feedback",
		Summary: "Submit and read feedback on bot messages",
		Subcommands: []*cli.Command{
			{
				Name:    "submit",
				Summary: "Record feedback on a bot message",
				Usage:   "shiftai analytics feedback submit [flags] <message-id>",
				Examples: []cli.Example{
					{
						Description: "Like a reply",
						Command:     "shiftai analytics feedback submit --like 4fa85f64-5717-4562-b3fc-2c963f66afa6",
					},
				},
				Flags: func() *pflag.FlagSet {
					return cli.FlagsFromParams("submit", &submitParams)
				},
				Run: func(args []string) error {
					if len(args) != 1 {
						return fmt.Errorf("expected exactly one message ID, got %d args", len(args))
					}
					messageID, err := parseUUIDArg("message ID", args[0])
					if err != nil {
						return err
					}

					client, err := submitParams.connect()
					if err != nil {
						return err
					}
					defer client.Close()

					request := shiftai.FeedbackRequest{MessageID: messageID}
					if submitParams.Like {
						request.Like = &submitParams.Like
					}
					if submitParams.Dislike {
						request.Dislike = &submitParams.Dislike
					}
					if submitParams.Regeneration {
						request.Regeneration = &submitParams.Regeneration
					}
					if submitParams.Text != "" {
						request.Feedback = &submitParams.Text
					}

					response, err := client.Analytics.SubmitFeedback(context.Background(), request)
					if err != nil {
						return err
					}
					return cli.WriteJSON(response)
				},
			},
			{
				Name:    "get",
				Summary: "Show the stored feedback for a bot message",
				Usage:   "shiftai analytics feedback get <message-id>",
				Flags: func() *pflag.FlagSet {
					return cli.FlagsFromParams("get", &getParams)
				},
				Run: func(args []string) error {
					if len(args) != 1 {
						return fmt.Errorf("expected exactly one message ID, got %d args", len(args))
					}
					messageID, err := parseUUIDArg("message ID", args[0])
					if err != nil {
						return err
					}

					client, err := getParams.connect()
					if err != nil {
						return err
					}
					defer client.Close()

					feedback, err := client.Analytics.GetFeedback(context.Background(), messageID)
					if err != nil {
						return err
					}
					return cli.WriteJSON(feedback)
				},
			},
		},
	}
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func int64Or(value *int64, fallback int64) int64 {
	if value == nil {
		return fallback
	}
	return *value
}

func percentOr(value *float64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *value)
}

package main

import (
	"log"
	"os"

	"github.com/larkops/lark-mcp-server/config"
	"github.com/larkops/lark-mcp-server/handlers"
	"github.com/larkops/lark-mcp-server/metrics"
	"github.com/larkops/lark-mcp-server/pkg/feishu"
	"github.com/larkops/lark-mcp-server/prompts"
	"github.com/larkops/lark-mcp-server/resources"
	"github.com/larkops/lark-mcp-server/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// stdout carries the MCP stdio transport; logging goes to stderr.
	logger := log.New(os.Stderr, "lark-mcp-server: ", log.LstdFlags|log.LUTC)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %s", err)
	}

	s := server.NewMCPServer(
		"LARK MCP SERVER",
		"0.2.0",
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	var client *feishu.Client
	if cfg.NeedsAPIClient() {
		client, err = feishu.NewClient(feishu.Options{
			AppID:     cfg.AppID,
			AppSecret: cfg.AppSecret,
			BaseURL:   cfg.BaseURL,
			Timeout:   cfg.RequestTimeout,
			ProbeTTL:  cfg.ProbeTTL,
		})
		if err != nil {
			logger.Fatalf("failed to build lark client: %s", err)
		}
	}

	addTool := func(tool mcp.Tool, handler server.ToolHandlerFunc) {
		s.AddTool(tool, metrics.Instrument(tool.Name, handler))
	}

	if client != nil {
		addTool(tools.BotProbeTool(), handlers.BotProbe(client))
	}
	if cfg.EnableCalendar {
		addTool(tools.PrimaryCalendarTool(), handlers.PrimaryCalendar(client))
		addTool(tools.ListCalendarsTool(), handlers.ListCalendars(client))
		addTool(tools.CreateEventTool(), handlers.CreateEvent(client))
		addTool(tools.GetEventTool(), handlers.GetEvent(client))
		addTool(tools.ListEventsTool(), handlers.ListEvents(client))
		addTool(tools.UpdateEventTool(), handlers.UpdateEvent(client))
		addTool(tools.DeleteEventTool(), handlers.DeleteEvent(client))
		addTool(tools.FreeBusyTool(), handlers.FreeBusy(client))
	}
	if cfg.EnableVC {
		addTool(tools.ReserveMeetingTool(), handlers.ReserveMeeting(client))
		addTool(tools.GetReservationTool(), handlers.GetReservation(client))
		addTool(tools.DeleteReservationTool(), handlers.DeleteReservation(client))
		addTool(tools.ActiveMeetingTool(), handlers.ActiveMeeting(client))
		addTool(tools.ListMeetingsTool(), handlers.ListMeetings(client))
	}
	if cfg.EnableMessaging {
		if client != nil {
			addTool(tools.SendMessageTool(), handlers.SendMessage(client))
			addTool(tools.UrgentMessageTool(), handlers.UrgentMessage(client))
		}
		addTool(tools.SendWebhookTool(), handlers.SendWebhook(cfg.WebhookURL, cfg.WebhookSecret))
	}
	if cfg.EnableFeedCard {
		addTool(tools.CreateFeedCardTool(), handlers.CreateFeedCard(client))
		addTool(tools.UpdateFeedCardTool(), handlers.UpdateFeedCard(client))
		addTool(tools.DeleteFeedCardTool(), handlers.DeleteFeedCard(client))
	}

	s.AddPrompt(prompts.UserIDTypePrompt(), handlers.UserIDTypePrompt())
	s.AddResource(resources.IDTypesResource(), handlers.GetIDTypes)

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				logger.Printf("metrics listener stopped: %s", err)
			}
		}()
	}

	logger.Println("server starting")
	if err := server.ServeStdio(s); err != nil {
		logger.Printf("failed to serve stdio: %s", err)
		return
	}
}

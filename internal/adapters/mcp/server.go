// Package mcp exposes the assessment engine as a Model Context Protocol
// server so agents can drive a questionnaire over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fbruhn/datakompass"
	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/internal/presentation/graph"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/engine"
	"github.com/fbruhn/datakompass/pkg/rules"
	"github.com/fbruhn/datakompass/pkg/session"
)

// QuestionResponse is the unified tool result for question rendering and
// navigation.
type QuestionResponse struct {
	Question  *domain.Question `json:"question,omitempty" jsonschema_description:"The active question, absent once completed"`
	Completed bool             `json:"completed" jsonschema_description:"Whether the questionnaire is finished"`
	Current   int              `json:"current" jsonschema_description:"1-based position of the active question"`
	Total     int              `json:"total" jsonschema_description:"Number of top-level catalog entries"`
}

// Server wraps the assessment engine and exposes it as an MCP Server.
type Server struct {
	catalog   *catalog.Catalog
	sessions  *session.Manager
	rules     *rules.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(cat *catalog.Catalog, sessions *session.Manager, ruleEngine *rules.Engine) *Server {
	s := &Server{
		catalog:   cat,
		sessions:  sessions,
		rules:     ruleEngine,
		mcpServer: server.NewMCPServer("datakompass-mcp", strings.TrimSpace(datakompass.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_question",
		mcp.WithDescription("Render the active question of an assessment session. Starts the session if it does not exist."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithString("language", mcp.Description("Two-letter language code (de or en, default de)")),
		mcp.WithOutputSchema[QuestionResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRenderQuestion))

	answerTool := mcp.NewTool("submit_answer",
		mcp.WithDescription("Record an answer for a question id. Values may be strings, numbers, booleans, or JSON arrays of strings."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithString("question_id", mcp.Required(), mcp.Description("Resolved question id, e.g. system_purpose_CRM")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Answer value, JSON-encoded for lists/numbers/booleans")),
		mcp.WithOutputSchema[QuestionResponse](),
	)
	s.mcpServer.AddTool(answerTool, mcp.NewStructuredToolHandler(s.handleSubmitAnswer))

	navigateTool := mcp.NewTool("navigate",
		mcp.WithDescription("Move to the next or previous question. Advancing past the last question completes the session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithString("direction", mcp.Required(), mcp.Description("Either 'next' or 'back'")),
		mcp.WithOutputSchema[QuestionResponse](),
	)
	s.mcpServer.AddTool(navigateTool, mcp.NewStructuredToolHandler(s.handleNavigate))

	s.mcpServer.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Evaluate the recommendation rules against the session's answers and return the suggestions as JSON."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
	), s.handleGetReport)

	s.mcpServer.AddTool(mcp.NewTool("get_diagram",
		mcp.WithDescription("Generate the d2 data flow diagram description for the session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
	), s.handleGetDiagram)
}

func (s *Server) handleRenderQuestion(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (QuestionResponse, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return QuestionResponse{}, fmt.Errorf("session_id is required")
	}
	language, _ := args["language"].(string)
	if language == "" {
		language = i18n.DefaultLanguage
	}

	state, err := s.sessions.LoadOrStart(ctx, sessionID, language)
	if err != nil {
		return QuestionResponse{}, fmt.Errorf("failed to load session: %w", err)
	}
	return s.respond(engine.NewTraversal(s.catalog, state)), nil
}

func (s *Server) handleSubmitAnswer(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (QuestionResponse, error) {
	sessionID, _ := args["session_id"].(string)
	questionID, _ := args["question_id"].(string)
	rawValue, _ := args["value"].(string)
	if sessionID == "" || questionID == "" {
		return QuestionResponse{}, fmt.Errorf("session_id and question_id are required")
	}

	// Values arrive as strings; JSON-decode to recover lists, numbers,
	// and booleans, falling back to the plain string.
	var value any = rawValue
	var decoded any
	if err := json.Unmarshal([]byte(rawValue), &decoded); err == nil {
		value = decoded
	}

	var resp QuestionResponse
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		trav := engine.NewTraversal(s.catalog, state)
		if err := trav.Answer(questionID, value); err != nil {
			return err
		}
		resp = s.respond(trav)
		return s.sessions.Store().Save(ctx, sessionID, state)
	})
	if err != nil {
		return QuestionResponse{}, fmt.Errorf("failed to record answer: %w", err)
	}
	return resp, nil
}

func (s *Server) handleNavigate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (QuestionResponse, error) {
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	if sessionID == "" {
		return QuestionResponse{}, fmt.Errorf("session_id is required")
	}

	var resp QuestionResponse
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		trav := engine.NewTraversal(s.catalog, state)
		switch direction {
		case "next":
			if err := trav.Advance(); err != nil {
				return err
			}
		case "back":
			trav.Retreat()
		default:
			return fmt.Errorf("unknown direction %q", direction)
		}
		resp = s.respond(trav)
		return s.sessions.Store().Save(ctx, sessionID, state)
	})
	if err != nil {
		return QuestionResponse{}, fmt.Errorf("navigation failed: %w", err)
	}
	return resp, nil
}

func (s *Server) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.loadSession(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	suggestions := s.rules.Evaluate(engine.NewTraversal(s.catalog, state).Answers())
	jsonBytes, _ := json.Marshal(suggestions)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGetDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.loadSession(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	script := graph.GenerateD2(engine.NewTraversal(s.catalog, state).Answers(), state.Language)
	return mcp.NewToolResultText(script), nil
}

func (s *Server) loadSession(ctx context.Context, request mcp.CallToolRequest) (*domain.State, error) {
	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return state, nil
}

func (s *Server) respond(trav *engine.Traversal) QuestionResponse {
	resp := QuestionResponse{Completed: trav.Completed()}
	resp.Current, resp.Total = trav.Progress()
	if q, ok := trav.Current(); ok {
		resp.Question = &q
	}
	return resp
}

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/pipeline"
)

// Language Server implementation
type LanguageServer struct {
	documents map[string]*DocumentState // URI -> document state
	mu        sync.RWMutex              // Protects documents, nextFile and settings
	writeMu   sync.Mutex                // Serializes writes to writer
	writer    io.Writer                 // Output stream for JSON-RPC responses
	rootPath  string                    // Workspace root used to find settings
	settings  *config.Settings
	nextFile  pipeline.FileID
	actions   *actionCache

	// Whether the client accepts code actions without an edit and fills
	// it in through codeAction/resolve.
	lazyEdits bool

	shutdown bool
	exited   bool
}

func NewLanguageServer(writer io.Writer) *LanguageServer {
	if writer == nil {
		writer = os.Stdout
	}
	return &LanguageServer{
		documents: make(map[string]*DocumentState),
		writer:    writer,
		actions:   newActionCache(),
	}
}

// Start serves stdin until the client sends exit or closes the stream.
func (s *LanguageServer) Start() {
	s.Serve(os.Stdin)
}

// ExitCode is the process status after Serve returns: 0 only when the
// client asked for shutdown before exit.
func (s *LanguageServer) ExitCode() int {
	if s.shutdown {
		return 0
	}
	return 1
}

func (s *LanguageServer) Serve(in io.Reader) {
	// A bufio.Reader handles arbitrary message sizes, unlike a Scanner.
	reader := bufio.NewReader(in)

	for !s.exited {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("Error reading header: %v", err)
			}
			return
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "Content-Length: ") {
			// Other headers (Content-Type) carry nothing we need.
			continue
		}
		contentLength, err := strconv.Atoi(strings.TrimPrefix(line, "Content-Length: "))
		if err != nil {
			log.Printf("Error parsing Content-Length: %v", err)
			continue
		}

		// Skip the remaining headers up to the empty separator line.
		for {
			header, err := reader.ReadString('\n')
			if err != nil {
				log.Printf("Error reading separator: %v", err)
				return
			}
			if strings.TrimRight(header, "\r\n") == "" {
				break
			}
		}

		content := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, content); err != nil {
			log.Printf("Error reading content: %v", err)
			return
		}

		if err := s.handleMessage(content); err != nil {
			log.Printf("Error handling message: %v", err)
		}
	}
}

type baseMessage struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (s *LanguageServer) handleMessage(content []byte) error {
	if s.logMessages() {
		log.Printf("Received message: %s", string(content))
	}

	var msg baseMessage
	if err := json.Unmarshal(content, &msg); err != nil {
		return errors.Wrap(err, "failed to unmarshal message")
	}

	// A request has an ID; a notification does not.
	if msg.ID != nil {
		return s.handleRequest(msg)
	}
	return s.handleNotification(msg)
}

func (s *LanguageServer) handleRequest(msg baseMessage) error {
	if s.shutdown && msg.Method != "shutdown" {
		return s.sendError(msg.ID, CodeInvalidRequest, "server is shutting down")
	}

	switch msg.Method {
	case "initialize":
		var params InitializeParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, CodeInvalidParams, err.Error())
		}
		return s.handleInitialize(msg.ID, params)

	case "shutdown":
		return s.handleShutdown(msg.ID)

	case "textDocument/hover":
		var params HoverParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, CodeInvalidParams, err.Error())
		}
		return s.handleHover(msg.ID, params)

	case "textDocument/codeAction":
		var params CodeActionParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, CodeInvalidParams, err.Error())
		}
		return s.handleCodeAction(msg.ID, params)

	case "codeAction/resolve":
		var action CodeAction
		if err := decodeParams(msg.Params, &action); err != nil {
			return s.sendError(msg.ID, CodeInvalidParams, err.Error())
		}
		return s.handleCodeActionResolve(msg.ID, action)

	default:
		return s.sendError(msg.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method))
	}
}

func (s *LanguageServer) handleNotification(msg baseMessage) error {
	switch msg.Method {
	case "initialized":
		return nil

	case "textDocument/didOpen":
		var params DidOpenTextDocumentParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidOpen(params)

	case "textDocument/didChange":
		var params DidChangeTextDocumentParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidChange(params)

	case "textDocument/didClose":
		var params DidCloseTextDocumentParams
		if err := decodeParams(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidClose(params)

	case "exit":
		s.exited = true
		return nil

	default:
		// Unknown notification, ignore
		return nil
	}
}

func decodeParams(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return errors.New("missing params")
	}
	return errors.Wrap(json.Unmarshal(raw, v), "failed to decode params")
}

func (s *LanguageServer) logMessages() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings != nil && s.settings.LogMessages
}

func (s *LanguageServer) sendResult(id interface{}, result interface{}) error {
	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *LanguageServer) sendError(id interface{}, code int, message string) error {
	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func (s *LanguageServer) sendResponse(response ResponseMessage) error {
	return s.sendMessage(response)
}

func (s *LanguageServer) sendNotification(notification NotificationMessage) error {
	return s.sendMessage(notification)
}

func (s *LanguageServer) sendMessage(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err = fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n%s", len(data), data)
	return err
}

package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
	"github.com/conn-castle/shell-tool-mcp/internal/supervisor"
)

// maxToolPages bounds tools/list pagination against servers that never stop returning cursors.
const maxToolPages = 100

// ClientName identifies the doctor in the MCP initialize request.
const ClientName = "shell-tool-doctor"

type mcpClientInterface interface {
	Connect(ctx context.Context, transport mcp.Transport, opts *mcp.ClientSessionOptions) (mcpSessionInterface, error)
}

type mcpSessionInterface interface {
	InitializeResult() *mcp.InitializeResult
	ListTools(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error)
	Close() error
}

type realMCPClient struct {
	client *mcp.Client
}

func (c *realMCPClient) Connect(ctx context.Context, transport mcp.Transport, opts *mcp.ClientSessionOptions) (mcpSessionInterface, error) {
	return c.client.Connect(ctx, transport, opts)
}

// NewMCPClientFunc builds the MCP client used by Probe.
var NewMCPClientFunc = func(impl *mcp.Implementation, opts *mcp.ClientOptions) mcpClientInterface {
	return &realMCPClient{client: mcp.NewClient(impl, opts)}
}

// ProbeResult is what the server reported during the handshake.
type ProbeResult struct {
	ServerName    string
	ServerVersion string
	Tools         []*mcp.Tool
}

// Probe starts spec over stdio, performs initialize and tools/list, and shuts the server down.
func Probe(ctx context.Context, spec supervisor.Spec, version string, timeout time.Duration) Result {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	res, err := probeServer(ctx, spec, version)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameProbe,
			Message:        fmt.Sprintf(messages.DoctorProbeFailedFmt, err),
			Recommendation: messages.DoctorProbeRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameProbe,
		Message:   fmt.Sprintf(messages.DoctorProbeOKFmt, res.ServerName, res.ServerVersion, len(res.Tools)),
	}
}

func probeServer(ctx context.Context, spec supervisor.Spec, version string) (*ProbeResult, error) {
	client := NewMCPClientFunc(&mcp.Implementation{Name: ClientName, Version: version}, nil)
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.DoctorProbeConnectFailedFmt, err)
	}
	defer func() { _ = session.Close() }()

	res := &ProbeResult{}
	if initRes := session.InitializeResult(); initRes != nil && initRes.ServerInfo != nil {
		res.ServerName = initRes.ServerInfo.Name
		res.ServerVersion = initRes.ServerInfo.Version
	}

	params := &mcp.ListToolsParams{}
	for page := 0; page < maxToolPages; page++ {
		list, err := session.ListTools(ctx, params)
		if err != nil {
			return nil, fmt.Errorf(messages.DoctorProbeListFailedFmt, err)
		}
		res.Tools = append(res.Tools, list.Tools...)
		if list.NextCursor == "" {
			break
		}
		params = &mcp.ListToolsParams{Cursor: list.NextCursor}
	}
	return res, nil
}

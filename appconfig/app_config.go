package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	McpServerUrl string `env:"MCP_SERVER_URL" ini:"mcp_server_url"`
	LlmModel     string `env:"LLM_MODEL" ini:"llm_model"`
}

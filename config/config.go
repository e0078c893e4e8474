package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tieubaoca/paper-notes-be/types"
)

type Config struct {
	Port                string              `mapstructure:"port"`
	AIProvider          string              `mapstructure:"ai_provider"`
	AIEndpoint          string              `mapstructure:"ai_endpoint"`
	Model               string              `mapstructure:"model"`
	EmbeddingModel      string              `mapstructure:"embedding_model"`
	OpenAIAPIKey        string              `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey        string              `mapstructure:"GEMINI_API_KEY"`
	UnstructuredAPIURL  string              `mapstructure:"unstructured_api_url"`
	UnstructuredAPIKey  string              `mapstructure:"UNSTRUCTURED_API_KEY"`
	MongoURI            string              `mapstructure:"MONGODB_URI"`
	MongoDatabase       string              `mapstructure:"mongo_database"`
	WeaviateStoreConfig WeaviateStoreConfig `mapstructure:"weaviate_store_config"`
}

type WeaviateStoreConfig struct {
	Host   string `mapstructure:"host"`
	APIKey string `mapstructure:"WEAVIATE_APIKEY"`
}

// LoadConfig builds the one Config passed into every constructor. Values
// come from the optional yaml file, overridden by environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("ai_endpoint", "https://api.openai.com/v1")
	v.SetDefault("model", "gpt-4-1106-preview")
	v.SetDefault("embedding_model", "text-embedding-ada-002")
	v.SetDefault("unstructured_api_url", "https://api.unstructured.io/general/v0/general")
	v.SetDefault("mongo_database", "arxiv")

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; secrets arrive via the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			fmt.Println("No config file loaded:", err)
		}
	}

	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("UNSTRUCTURED_API_KEY")
	v.BindEnv("MONGODB_URI")
	v.BindEnv("weaviate_store_config.host", "WEAVIATE_HOST")
	v.BindEnv("weaviate_store_config.WEAVIATE_APIKEY", "WEAVIATE_APIKEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate fails fast on missing store credentials. The extraction and
// model keys are checked by the services that use them.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("%w: MONGODB_URI", types.ErrMissingEnv)
	}
	if c.WeaviateStoreConfig.Host == "" {
		return fmt.Errorf("%w: WEAVIATE_HOST", types.ErrMissingEnv)
	}
	return nil
}

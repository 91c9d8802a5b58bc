package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerCfg struct {
	Port            int `yaml:"port" json:"port"`
	ShutdownSeconds int `yaml:"shutdown_seconds" json:"shutdown_seconds"`
}

type CacheCfg struct {
	// Backend one of memory, redis, hybrid.
	Backend    string `yaml:"backend" json:"backend"`
	MaxEntries int    `yaml:"max_entries" json:"max_entries"`
	TTLMinutes int    `yaml:"ttl_minutes" json:"ttl_minutes"`
	RedisURL   string `yaml:"redis_url" json:"redis_url"`
}

type NERCfg struct {
	ModelPath   string `yaml:"model_path" json:"model_path"`
	LibraryPath string `yaml:"library_path" json:"library_path"`
	NumThreads  int    `yaml:"num_threads" json:"num_threads"`
	MaxSeqLen   int    `yaml:"max_seq_len" json:"max_seq_len"`
}

type ExtractionCfg struct {
	TimeoutSeconds int                `yaml:"timeout_seconds" json:"timeout_seconds"`
	GazetteerPath  string             `yaml:"gazetteer_path" json:"gazetteer_path"`
	Thresholds     map[string]float64 `yaml:"thresholds" json:"thresholds"`
}

type BatchCfg struct {
	MaxAddresses int `yaml:"max_addresses" json:"max_addresses"`
}

type AppCfg struct {
	Server     ServerCfg     `yaml:"server" json:"server"`
	Cache      CacheCfg      `yaml:"cache" json:"cache"`
	NER        NERCfg        `yaml:"ner" json:"ner"`
	Extraction ExtractionCfg `yaml:"extraction" json:"extraction"`
	Batch      BatchCfg      `yaml:"batch" json:"batch"`
}

var C = Defaults()

// Defaults sane values for a single-node deployment with no config file.
func Defaults() AppCfg {
	return AppCfg{
		Server:     ServerCfg{Port: 8080, ShutdownSeconds: 10},
		Cache:      CacheCfg{Backend: "memory", MaxEntries: 10000, TTLMinutes: 60},
		Extraction: ExtractionCfg{TimeoutSeconds: 30},
		Batch:      BatchCfg{MaxAddresses: 20000},
	}
}

// Load reads the YAML file into C, then applies ENV overrides.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}
	applyEnv()
	return nil
}

func applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.Server.Port = p
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		C.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		C.Cache.RedisURL = v
	}
	if v := os.Getenv("NER_MODEL_PATH"); v != "" {
		C.NER.ModelPath = v
	}
	if v := os.Getenv("ONNXRUNTIME_LIB_PATH"); v != "" {
		C.NER.LibraryPath = v
	}
	if v := os.Getenv("GAZETTEER_PATH"); v != "" {
		C.Extraction.GazetteerPath = v
	}
}

func RequestTimeout() time.Duration {
	if C.Extraction.TimeoutSeconds > 0 {
		return time.Duration(C.Extraction.TimeoutSeconds) * time.Second
	}
	return 30 * time.Second
}

func CacheTTL() time.Duration {
	if C.Cache.TTLMinutes > 0 {
		return time.Duration(C.Cache.TTLMinutes) * time.Minute
	}
	return time.Hour
}

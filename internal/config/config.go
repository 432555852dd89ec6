package config

import (
	"fmt"
	"os"

	"tx-resolver-sol/internal/pkg/logger"
	"tx-resolver-sol/internal/pkg/types"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 表示交易获取所用的 Solana RPC 配置。
type RpcConfig struct {
	Cluster    string `yaml:"cluster"`     // mainnet-beta / devnet / testnet
	Endpoint   string `yaml:"endpoint"`    // 显式 RPC 地址，非空时覆盖 cluster 映射
	TimeoutS   int    `yaml:"timeout_s"`   // 单次请求超时（秒），默认 10
	RetryCount int    `yaml:"retry_count"` // 失败重试次数，默认 3
}

// CacheConfig 表示交易记录缓存配置（redis）。
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr"` // Redis 地址，空表示禁用缓存
	TTLSec    int    `yaml:"ttl_sec"`    // 缓存 TTL（秒），默认 86400
}

// TargetConfig 表示默认的定位目标与日志命名偏好。
type TargetConfig struct {
	ProgramID  string `yaml:"program_id"` // 目标程序地址（base58）
	LogMarker  string `yaml:"log_marker"` // 日志命名偏好标记，空表示无偏好级
	LabelsFile string `yaml:"labels_file"`
}

// ResolverConfig 是主配置结构体。
type ResolverConfig struct {
	LogConf    LogConfig    `yaml:"logger"`
	RpcConf    RpcConfig    `yaml:"rpc"`
	CacheConf  CacheConfig  `yaml:"cache"`
	TargetConf TargetConfig `yaml:"target"`
}

// LoadLabelOverrides 读取标签覆盖文件（yaml：base58 地址 → 描述），
// 用于在内置标签表之外补充业务自定义的账户描述。path 为空返回 nil。
func LoadLabelOverrides(path string) (map[types.Pubkey]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file %q: %w", path, err)
	}

	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse labels file %q: %w", path, err)
	}

	labels := make(map[types.Pubkey]string, len(raw))
	for addr, label := range raw {
		pubkey, err := types.TryPubkeyFromBase58(addr)
		if err != nil {
			return nil, fmt.Errorf("labels file %q: %w", path, err)
		}
		labels[pubkey] = label
	}
	return labels, nil
}

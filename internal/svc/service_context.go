package svc

import (
	"tx-resolver-sol/internal/cache"
	"tx-resolver-sol/internal/config"
	"tx-resolver-sol/internal/pkg/logger"
	"tx-resolver-sol/internal/service"
)

// ServiceContext 包含解析流程依赖的外部资源。
type ServiceContext struct {
	Config       config.ResolverConfig
	TxCache      *cache.TxCache // redis 未配置时为 nil
	FetchService *service.TxFetchService
}

// NewServiceContext 创建服务上下文。
func NewServiceContext(c config.ResolverConfig) (*ServiceContext, error) {
	// 1. 可选初始化交易记录缓存
	var txCache *cache.TxCache
	if c.CacheConf.RedisAddr != "" {
		txCache = cache.NewTxCache(c.CacheConf.RedisAddr, c.CacheConf.TTLSec)
	}

	// 2. 初始化交易拉取服务
	fetchService, err := service.NewTxFetchService(&c.RpcConf, txCache)
	if err != nil {
		logger.Errorf("TxFetchService 初始化失败: %v", err)
		if txCache != nil {
			txCache.Close()
		}
		return nil, err
	}

	return &ServiceContext{
		Config:       c,
		TxCache:      txCache,
		FetchService: fetchService,
	}, nil
}

// Close 关闭服务上下文中的资源
func (ctx *ServiceContext) Close() {
	if ctx.TxCache != nil {
		ctx.TxCache.Close()
	}
}

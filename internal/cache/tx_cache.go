package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Redis key 前缀
const txRecordPrefix = "resolver:txrecord"

// 交易记录不可变，TTL 只为控制占用（可调）
const defaultTTL = 24 * time.Hour

// TxCache 管理 Redis 中按签名缓存的交易记录，
// 避免重复生成 fixture 时反复打公共 RPC。
// 缓存未命中或出错时调用方直接回源，缓存层永不阻断主流程。
type TxCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTxCache 创建交易记录缓存。ttlSec <= 0 时使用默认 TTL。
func NewTxCache(addr string, ttlSec int) *TxCache {
	ttl := defaultTTL
	if ttlSec > 0 {
		ttl = time.Duration(ttlSec) * time.Second
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // eg: "127.0.0.1:6379"
	})
	return &TxCache{rdb: rdb, ttl: ttl}
}

// getKey 构造 Redis key
func (c *TxCache) getKey(signature string) string {
	return fmt.Sprintf("%s:%s", txRecordPrefix, signature)
}

// Get 按签名读取缓存的交易记录，未命中返回 ok=false。
func (c *TxCache) Get(ctx context.Context, signature string) (*domain.TxRecord, bool) {
	val, err := c.rdb.Get(ctx, c.getKey(signature)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		logger.Warnf("[TxCache] redis get 失败: sig=%s err=%v", signature, err)
		return nil, false
	}

	var rec domain.TxRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		// 缓存内容损坏按未命中处理，回源覆盖
		logger.Warnf("[TxCache] 缓存记录解析失败: sig=%s err=%v", signature, err)
		return nil, false
	}
	return &rec, true
}

// Put 写入交易记录，失败仅告警不上抛。
func (c *TxCache) Put(ctx context.Context, rec *domain.TxRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		logger.Warnf("[TxCache] 序列化失败: sig=%s err=%v", rec.Signature, err)
		return
	}
	if err := c.rdb.Set(ctx, c.getKey(rec.Signature), data, c.ttl).Err(); err != nil {
		logger.Warnf("[TxCache] redis set 失败: sig=%s err=%v", rec.Signature, err)
	}
}

// Close 关闭 Redis 连接。
func (c *TxCache) Close() {
	if err := c.rdb.Close(); err != nil {
		logger.Warnf("[TxCache] close 失败: %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tx-resolver-sol/internal/cache"
	"tx-resolver-sol/internal/config"
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/pkg/logger"
	"tx-resolver-sol/internal/pkg/types"

	"github.com/blocto/solana-go-sdk/client"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 3
	retryBackoff      = 2 * time.Second
)

// TxFetchService 按签名拉取交易并物化为 domain.TxRecord。
// 可选挂接 TxCache：命中则跳过 RPC，回源成功后写回。
type TxFetchService struct {
	client  *client.Client // Solana RPC客户端
	cache   *cache.TxCache // 可为 nil
	timeout time.Duration
	retries int
}

// NewTxFetchService 创建交易拉取服务。
// Endpoint 显式配置时优先；否则按 cluster 名称映射公共 RPC 入口。
func NewTxFetchService(cfg *config.RpcConfig, txCache *cache.TxCache) (*TxFetchService, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		ep, ok := consts.ClusterEndpoint(cfg.Cluster)
		if !ok {
			return nil, fmt.Errorf("unknown cluster: %q", cfg.Cluster)
		}
		endpoint = ep
	}

	timeout := defaultTimeout
	if cfg.TimeoutS > 0 {
		timeout = time.Duration(cfg.TimeoutS) * time.Second
	}
	retries := defaultRetryCount
	if cfg.RetryCount > 0 {
		retries = cfg.RetryCount
	}

	c := client.NewClient(endpoint)
	if c == nil {
		return nil, errors.New("rpc client init failed")
	}
	return &TxFetchService{
		client:  c,
		cache:   txCache,
		timeout: timeout,
		retries: retries,
	}, nil
}

// FetchTxRecord 拉取并物化交易记录。
// 公共 RPC 偶发限流，失败时按固定间隔重试。
func (s *TxFetchService) FetchTxRecord(ctx context.Context, signature string) (*domain.TxRecord, error) {
	if s.cache != nil {
		if rec, ok := s.cache.Get(ctx, signature); ok {
			logger.Infof("[TxFetchService] 缓存命中: sig=%s", signature)
			return rec, nil
		}
	}

	var lastErr error
	for i := 0; i < s.retries; i++ {
		if i > 0 {
			logger.Warnf("[TxFetchService] 第 %d 次拉取失败, 重试: sig=%s err=%v", i, signature, lastErr)
			time.Sleep(retryBackoff)
		}
		rec, err := s.fetchOnce(ctx, signature)
		if err != nil {
			lastErr = err
			continue
		}
		if s.cache != nil {
			s.cache.Put(ctx, rec)
		}
		return rec, nil
	}
	return nil, fmt.Errorf("fetch transaction %s: %w", signature, lastErr)
}

func (s *TxFetchService) fetchOnce(ctx context.Context, signature string) (*domain.TxRecord, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.GetTransaction(callCtx, signature)
	if err != nil {
		return nil, fmt.Errorf("GetTransaction failed: %w", err)
	}
	if resp == nil || resp.Meta == nil {
		return nil, errors.New("transaction not found")
	}
	logger.Infof("[TxFetchService] GetTransaction 成功: sig=%s slot=%d 耗时=%v", signature, resp.Slot, time.Since(start))

	return convertTransaction(signature, resp)
}

// convertTransaction 将 SDK 响应映射为内部交易记录：
// 静态账户与指令取自 message，加载地址与日志取自 meta。
func convertTransaction(signature string, resp *client.Transaction) (*domain.TxRecord, error) {
	msg := resp.Transaction.Message

	accountKeys := make([]types.Pubkey, 0, len(msg.Accounts))
	for _, acc := range msg.Accounts {
		accountKeys = append(accountKeys, types.Pubkey(acc))
	}

	instructions := make([]domain.CompiledInstruction, 0, len(msg.Instructions))
	for _, inst := range msg.Instructions {
		instructions = append(instructions, domain.CompiledInstruction{
			ProgramIDIndex: inst.ProgramIDIndex,
			Accounts:       inst.Accounts,
			Data:           inst.Data,
		})
	}

	loaded, err := convertLoadedAddresses(resp.Meta.LoadedAddresses.Writable, resp.Meta.LoadedAddresses.Readonly)
	if err != nil {
		return nil, err
	}

	return &domain.TxRecord{
		Signature: signature,
		Slot:      resp.Slot,
		Message: domain.Message{
			AccountKeys: accountKeys,
			Header: domain.MessageHeader{
				NumRequiredSignatures:       int(msg.Header.NumRequireSignatures),
				NumReadonlySignedAccounts:   int(msg.Header.NumReadonlySignedAccounts),
				NumReadonlyUnsignedAccounts: int(msg.Header.NumReadonlyUnsignedAccounts),
			},
			Instructions: instructions,
		},
		Loaded:      loaded,
		LogMessages: resp.Meta.LogMessages,
	}, nil
}

// convertLoadedAddresses 解析 meta.loadedAddresses 两组地址。
// legacy 交易两组皆空，返回 nil 保持记录形态与消息版本一致。
func convertLoadedAddresses(writable, readonly []string) (*domain.LoadedAddresses, error) {
	if len(writable) == 0 && len(readonly) == 0 {
		return nil, nil
	}

	w := make([]types.Pubkey, 0, len(writable))
	for _, s := range writable {
		p, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("loaded writable address: %w", err)
		}
		w = append(w, p)
	}
	r := make([]types.Pubkey, 0, len(readonly))
	for _, s := range readonly {
		p, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("loaded readonly address: %w", err)
		}
		r = append(r, p)
	}
	return &domain.LoadedAddresses{Writable: w, Readonly: r}, nil
}

package resolver

import (
	"fmt"

	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/pkg/types"
)

// Options 控制一次解析的可选行为。
type Options struct {
	// LogSubsystemMarker 为日志命名的偏好标记（大小写不敏感），
	// 空串表示不设偏好级，直接取首条 "Instruction:" 日志。
	LogSubsystemMarker string

	// Labels 为账户标签覆盖表（可为 nil），优先于内置标签。
	Labels map[types.Pubkey]string
}

// Resolution 是一次完整解析的结果。
// Accounts 与指令 accountIndices 逐项对应并保持顺序；
// OperationName 可为空串（日志中未找到指令名，不视为失败）。
type Resolution struct {
	Target        types.Pubkey
	Position      int
	Data          []byte
	Accounts      []AccountDescriptor
	OperationName string
}

// ResolveTargetInstruction 对一条已物化的交易记录执行完整解析：
//
//	账户表拼接 → 目标指令定位 → 逐账户权限标注 → 日志指令命名。
//
// 纯函数：不做 I/O，不修改入参，相同输入必然产出逐字节相同的结果。
// 失败以 ErrTargetAbsent / ErrInstructionAbsent / ErrMalformedIndex 上报；
// 意外 panic 统一转为 error 返回，避免破坏调用方流程。
func ResolveTargetInstruction(rec *domain.TxRecord, target types.Pubkey, opts Options) (_ *Resolution, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ResolveTargetInstruction panic: %v", r)
		}
	}()

	table := BuildAccountTable(rec.Message.AccountKeys, rec.LoadedWritable(), rec.LoadedReadonly())

	located, err := LocateInstruction(table, rec.Message.Instructions, target)
	if err != nil {
		return nil, err
	}

	classifier := NewPrivilegeClassifier(table, rec.Message.Header, opts.Labels)
	accounts, err := classifier.Describe(located.AccountIndices, target)
	if err != nil {
		return nil, fmt.Errorf("describe instruction %d: %w", located.Position, err)
	}

	// 日志命名独立于账户解析，缺席时保持空串
	name, _ := OperationNameFromLogs(rec.LogMessages, opts.LogSubsystemMarker)

	return &Resolution{
		Target:        target,
		Position:      located.Position,
		Data:          located.Data,
		Accounts:      accounts,
		OperationName: name,
	}, nil
}

package domain

import (
	"tx-resolver-sol/internal/pkg/types"
)

// MessageHeader 表示交易消息头的三个计数。
// 三个计数只描述静态账户前缀的分区；
// Address Lookup Table 加载的地址不在这套区间算术的覆盖范围内。
type MessageHeader struct {
	NumRequiredSignatures       int `json:"num_required_signatures"`
	NumReadonlySignedAccounts   int `json:"num_readonly_signed_accounts"`
	NumReadonlyUnsignedAccounts int `json:"num_readonly_unsigned_accounts"`
}

// CompiledInstruction 表示消息内的一条原始指令。
// Accounts 为指向账户表的索引列表，保持原始顺序；Data 为不透明指令数据。
type CompiledInstruction struct {
	ProgramIDIndex int    `json:"program_id_index"`
	Accounts       []int  `json:"accounts"`
	Data           []byte `json:"data"`
}

// Message 表示交易消息体（静态部分）。
// AccountKeys 仅含消息中直接列出的静态账户，v0 交易加载的地址见 LoadedAddresses。
type Message struct {
	AccountKeys  []types.Pubkey        `json:"account_keys"`
	Header       MessageHeader         `json:"header"`
	Instructions []CompiledInstruction `json:"instructions"`
}

// LoadedAddresses 表示 v0 交易经 Address Lookup Table 加载的地址，
// 按 writable / readonly 分组，组内保持加载顺序。legacy 交易无此扩展。
type LoadedAddresses struct {
	Writable []types.Pubkey `json:"writable"`
	Readonly []types.Pubkey `json:"readonly"`
}

// TxRecord 表示一笔已完全物化的交易记录，是解析流程的唯一输入。
// 网络获取与缓存层负责构造它；核心解析不做任何 I/O。
type TxRecord struct {
	Signature   string           `json:"signature"`
	Slot        uint64           `json:"slot"`
	Message     Message          `json:"message"`
	Loaded      *LoadedAddresses `json:"loaded,omitempty"` // legacy 交易为 nil
	LogMessages []string         `json:"log_messages"`
}

// LoadedWritable 返回加载的 writable 地址组，legacy 交易返回 nil。
func (r *TxRecord) LoadedWritable() []types.Pubkey {
	if r.Loaded == nil {
		return nil
	}
	return r.Loaded.Writable
}

// LoadedReadonly 返回加载的 readonly 地址组，legacy 交易返回 nil。
func (r *TxRecord) LoadedReadonly() []types.Pubkey {
	if r.Loaded == nil {
		return nil
	}
	return r.Loaded.Readonly
}

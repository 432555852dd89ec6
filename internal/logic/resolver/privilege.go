package resolver

import (
	"fmt"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/pkg/types"
)

// AccountDescriptor 是单个账户的权限标注结果。
type AccountDescriptor struct {
	Pubkey   types.Pubkey
	Signer   bool
	Writable bool
	Label    string
}

// PrivilegeClassifier 基于消息头计数与账户表结构，判定任意索引的
// signer / writable 权限。
//
// 判定分两套规则（两种区间的编码方式不同，不能合并为一个公式）：
//
//	静态前缀 i < S：
//	  signer          ⇔ i < numRequiredSignatures
//	  readonly-signed ⇔ numRequiredSignatures-numReadonlySigned ≤ i < numRequiredSignatures
//	  readonly-unsign ⇔ i ≥ S-numReadonlyUnsigned
//	  writable        ⇔ 不属于上述两个 readonly 区间
//
//	加载区间 i ≥ S：
//	  永远不是 signer；
//	  writable ⇔ i < S+len(loadedWritable)，即按加载分组的成员关系判定，
//	  与头部计数无关。
type PrivilegeClassifier struct {
	table  *AccountTable
	header domain.MessageHeader
	labels map[types.Pubkey]string // 额外标签（可为 nil），优先级高于内置表
}

// NewPrivilegeClassifier 构造权限判定器。
// extraLabels 为可选的标签覆盖表（如来自配置文件），可传 nil。
func NewPrivilegeClassifier(table *AccountTable, header domain.MessageHeader, extraLabels map[types.Pubkey]string) *PrivilegeClassifier {
	return &PrivilegeClassifier{
		table:  table,
		header: header,
		labels: extraLabels,
	}
}

// IsSigner 判定索引 i 是否为签名者。
// 仅静态前缀可能是签名者；加载地址按定义不参与签名。
func (c *PrivilegeClassifier) IsSigner(i int) bool {
	if i >= c.table.StaticLen() {
		return false
	}
	return i < c.header.NumRequiredSignatures
}

// IsWritable 判定索引 i 是否可写。
func (c *PrivilegeClassifier) IsWritable(i int) bool {
	s := c.table.StaticLen()
	if i >= s {
		// 加载区间：writable 组在前，readonly 组在后
		return i < s+c.table.LoadedWritableLen()
	}

	h := c.header
	readonlySigned := i >= h.NumRequiredSignatures-h.NumReadonlySignedAccounts && i < h.NumRequiredSignatures
	readonlyUnsigned := i >= s-h.NumReadonlyUnsignedAccounts
	return !readonlySigned && !readonlyUnsigned
}

// Describe 为一条指令的账户索引列表逐项生成 AccountDescriptor。
// 保持原始顺序，重复索引逐次产出，不去重。
// 任一索引越界即返回 ErrMalformedIndex，不产出截断结果。
func (c *PrivilegeClassifier) Describe(indices []int, target types.Pubkey) ([]AccountDescriptor, error) {
	descriptors := make([]AccountDescriptor, 0, len(indices))
	for _, idx := range indices {
		pubkey, ok := c.table.Get(idx)
		if !ok {
			return nil, fmt.Errorf("%w: index=%d table_len=%d", ErrMalformedIndex, idx, c.table.Len())
		}
		signer := c.IsSigner(idx)
		descriptors = append(descriptors, AccountDescriptor{
			Pubkey:   pubkey,
			Signer:   signer,
			Writable: c.IsWritable(idx),
			Label:    c.label(pubkey, target, signer),
		})
	}
	return descriptors, nil
}

// label 为账户生成 best-effort 描述：覆盖表 → 内置表 → 目标程序 → 通用角色。
// 未收录地址属正常情况，永不失败。
func (c *PrivilegeClassifier) label(pubkey, target types.Pubkey, signer bool) string {
	if c.labels != nil {
		if label, ok := c.labels[pubkey]; ok {
			return label
		}
	}
	if label, ok := consts.WellKnownLabel(pubkey); ok {
		return label
	}
	switch {
	case pubkey == target:
		return consts.LabelTargetProgram
	case signer:
		return consts.LabelUserWallet
	default:
		return consts.LabelAccount
	}
}

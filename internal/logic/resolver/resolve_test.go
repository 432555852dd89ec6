package resolver

import (
	"errors"
	"testing"

	"tx-resolver-sol/internal/logic/domain"

	"github.com/stretchr/testify/assert"
)

func legacyRecord() *domain.TxRecord {
	// 静态账户 [A,B,C,D]，D 为目标程序且是最后一个静态账户
	return &domain.TxRecord{
		Signature: "sig-1",
		Message: domain.Message{
			AccountKeys: pks(0xA, 0xB, 0xC, 0xD),
			Header: domain.MessageHeader{
				NumRequiredSignatures:       1,
				NumReadonlySignedAccounts:   0,
				NumReadonlyUnsignedAccounts: 1,
			},
			Instructions: []domain.CompiledInstruction{
				{ProgramIDIndex: 3, Accounts: []int{0, 3}, Data: []byte{0x2A}},
			},
		},
		LogMessages: []string{
			"Program log: Instruction: Route",
			"Program log: other",
		},
	}
}

func TestResolveTargetInstruction_EndToEnd(t *testing.T) {
	res, err := ResolveTargetInstruction(legacyRecord(), pk(0xD), Options{})

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, []byte{0x2A}, res.Data)
	assert.Equal(t, "Route", res.OperationName)

	assert.Len(t, res.Accounts, 2)
	// index 0：可写签名者
	assert.Equal(t, pk(0xA), res.Accounts[0].Pubkey)
	assert.True(t, res.Accounts[0].Signer)
	assert.True(t, res.Accounts[0].Writable)
	// index 3：readonly-unsigned（最后一个静态账户且 numReadonlyUnsigned=1）
	assert.Equal(t, pk(0xD), res.Accounts[1].Pubkey)
	assert.False(t, res.Accounts[1].Signer)
	assert.False(t, res.Accounts[1].Writable)
}

// 相同输入重复解析，结果逐项相同（幂等）
func TestResolveTargetInstruction_Idempotent(t *testing.T) {
	first, err1 := ResolveTargetInstruction(legacyRecord(), pk(0xD), Options{})
	second, err2 := ResolveTargetInstruction(legacyRecord(), pk(0xD), Options{})

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

// v0 交易：指令引用加载地址，writable 按分组判定
func TestResolveTargetInstruction_LoadedAddresses(t *testing.T) {
	rec := &domain.TxRecord{
		Signature: "sig-2",
		Message: domain.Message{
			AccountKeys: pks(1, 2), // S=2
			Header: domain.MessageHeader{
				NumRequiredSignatures:       1,
				NumReadonlyUnsignedAccounts: 1,
			},
			Instructions: []domain.CompiledInstruction{
				// 目标程序在 readonly 加载组（index 4），引用静态 0、writable 加载 2、readonly 加载 3
				{ProgramIDIndex: 4, Accounts: []int{0, 2, 3}, Data: []byte{0x01}},
			},
		},
		Loaded: &domain.LoadedAddresses{
			Writable: pks(10, 11),
			Readonly: pks(20),
		},
	}

	res, err := ResolveTargetInstruction(rec, pk(20), Options{})

	assert.NoError(t, err)
	assert.True(t, res.Accounts[0].Signer)
	assert.True(t, res.Accounts[0].Writable)

	// 加载 writable 组：非签名者但可写
	assert.False(t, res.Accounts[1].Signer)
	assert.True(t, res.Accounts[1].Writable)

	// 加载 writable 组第二项同样可写
	assert.Equal(t, pk(11), res.Accounts[2].Pubkey)
	assert.False(t, res.Accounts[2].Signer)
	assert.True(t, res.Accounts[2].Writable)
}

func TestResolveTargetInstruction_TargetAbsent(t *testing.T) {
	_, err := ResolveTargetInstruction(legacyRecord(), pk(0xEE), Options{})
	assert.True(t, errors.Is(err, ErrTargetAbsent))
}

// 越界账户索引导致整体失败，错误可被 errors.Is 识别
func TestResolveTargetInstruction_MalformedIndex(t *testing.T) {
	rec := legacyRecord()
	rec.Message.Instructions[0].Accounts = []int{0, 99}

	_, err := ResolveTargetInstruction(rec, pk(0xD), Options{})

	assert.True(t, errors.Is(err, ErrMalformedIndex))
}

// 日志缺席不阻断解析，OperationName 保持空串
func TestResolveTargetInstruction_NoLogName(t *testing.T) {
	rec := legacyRecord()
	rec.LogMessages = []string{"Program log: nothing to see"}

	res, err := ResolveTargetInstruction(rec, pk(0xD), Options{})

	assert.NoError(t, err)
	assert.Equal(t, "", res.OperationName)
}

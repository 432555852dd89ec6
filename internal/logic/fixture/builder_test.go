package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/logic/resolver"
	"tx-resolver-sol/internal/pkg/types"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
)

func testResolution() (*domain.TxRecord, *resolver.Resolution) {
	var target types.Pubkey
	target[0] = 0xD

	rec := &domain.TxRecord{
		Signature: "TestSig111",
		Message: domain.Message{
			Instructions: make([]domain.CompiledInstruction, 3),
		},
	}
	res := &resolver.Resolution{
		Target:        target,
		Position:      2,
		Data:          []byte{0x01, 0x02},
		OperationName: "Route",
		Accounts: []resolver.AccountDescriptor{
			{Pubkey: types.Pubkey{0xA}, Signer: true, Writable: true, Label: "User wallet"},
			{Pubkey: target, Signer: false, Writable: false, Label: "Target program"},
		},
	}
	return rec, res
}

func TestBuild(t *testing.T) {
	rec, res := testResolution()

	record := Build(rec, res, Meta{Cluster: "mainnet-beta"})

	assert.Equal(t, "TestSig111", record.Signature)
	assert.Equal(t, "https://solscan.io/tx/TestSig111", record.Source)
	assert.Equal(t, "mainnet-beta", record.Cluster)
	assert.Equal(t, 2, record.InstructionIndex)
	assert.Equal(t, base58.Encode([]byte{0x01, 0x02}), record.InstructionData)
	assert.Equal(t, res.Target.String(), record.ProgramID)
	assert.Equal(t, res.Target.String(), record.ExpectedFields["program_id"])
	assert.Contains(t, record.FullTransactionNote, "3 instructions")
	assert.Contains(t, record.Description, "Route")

	// 账户顺序与权限标注逐项对应
	assert.Len(t, record.Accounts, 2)
	assert.Equal(t, Account{
		Pubkey:      res.Accounts[0].Pubkey.String(),
		Signer:      true,
		Writable:    true,
		Description: "User wallet",
	}, record.Accounts[0])
	assert.False(t, record.Accounts[1].Signer)
	assert.False(t, record.Accounts[1].Writable)
}

// 显式描述覆盖默认生成；日志指令名缺席时降级为通用描述
func TestBuild_Description(t *testing.T) {
	rec, res := testResolution()

	record := Build(rec, res, Meta{Cluster: "devnet", Description: "my fixture"})
	assert.Equal(t, "my fixture", record.Description)

	res.OperationName = ""
	record = Build(rec, res, Meta{Cluster: "devnet"})
	assert.Contains(t, record.Description, "instruction")
}

func TestWriteFile(t *testing.T) {
	rec, res := testResolution()
	record := Build(rec, res, Meta{Cluster: "mainnet-beta"})

	dir := t.TempDir()
	path, err := WriteFile(filepath.Join(dir, "route_example"), record)

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "route_example.json"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var decoded Record
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *record, decoded)
}

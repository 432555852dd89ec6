package fixture

import (
	"fmt"

	"tx-resolver-sol/internal/logic/domain"
	"tx-resolver-sol/internal/logic/resolver"

	"github.com/mr-tron/base58"
)

// Account 是 fixture 中单个账户的条目。
type Account struct {
	Pubkey      string `json:"pubkey"`
	Signer      bool   `json:"signer"`
	Writable    bool   `json:"writable"`
	Description string `json:"description"`
}

// Record 是最终写入文件的 fixture 结构。
// 字段命名与既有 fixture 消费方保持一致，不随内部结构演化。
type Record struct {
	Description         string            `json:"description"`
	Source              string            `json:"source"`
	Signature           string            `json:"signature"`
	Cluster             string            `json:"cluster"`
	FullTransactionNote string            `json:"full_transaction_note"`
	InstructionIndex    int               `json:"instruction_index"`
	InstructionData     string            `json:"instruction_data"`
	ProgramID           string            `json:"program_id"`
	Accounts            []Account         `json:"accounts"`
	ExpectedFields      map[string]string `json:"expected_fields"`
}

// Meta 携带解析结果之外的出处信息，由调用方提供，核心不生成也不检查。
type Meta struct {
	Cluster     string
	Description string // 空则按解析结果生成默认描述
}

// Build 将解析结果与交易记录组装为 fixture Record。
// 账户顺序与 Resolution.Accounts 逐项对应；指令数据以 base58 编码落盘。
func Build(rec *domain.TxRecord, res *resolver.Resolution, meta Meta) *Record {
	accounts := make([]Account, 0, len(res.Accounts))
	for _, desc := range res.Accounts {
		accounts = append(accounts, Account{
			Pubkey:      desc.Pubkey.String(),
			Signer:      desc.Signer,
			Writable:    desc.Writable,
			Description: desc.Label,
		})
	}

	operation := res.OperationName
	if operation == "" {
		operation = "instruction" // 日志中未找到指令名，降级为通用描述
	}
	description := meta.Description
	if description == "" {
		description = fmt.Sprintf("%s %s transaction", res.Target, operation)
	}

	return &Record{
		Description: description,
		Source:      fmt.Sprintf("https://solscan.io/tx/%s", rec.Signature),
		Signature:   rec.Signature,
		Cluster:     meta.Cluster,
		FullTransactionNote: fmt.Sprintf(
			"This transaction has %d instructions. The target instruction is at index %d.",
			len(rec.Message.Instructions), res.Position,
		),
		InstructionIndex: res.Position,
		InstructionData:  base58.Encode(res.Data),
		ProgramID:        res.Target.String(),
		Accounts:         accounts,
		ExpectedFields: map[string]string{
			"program_id": res.Target.String(),
		},
	}
}

package resolver

import (
	"testing"

	"tx-resolver-sol/internal/pkg/types"

	"github.com/stretchr/testify/assert"
)

// pk 构造测试用 Pubkey（首字节区分即可）
func pk(b byte) types.Pubkey {
	var p types.Pubkey
	p[0] = b
	return p
}

func pks(bs ...byte) []types.Pubkey {
	result := make([]types.Pubkey, 0, len(bs))
	for _, b := range bs {
		result = append(result, pk(b))
	}
	return result
}

// legacy 交易（无加载地址）：账户表与静态列表逐项相等
func TestBuildAccountTable_LegacyIdentity(t *testing.T) {
	static := pks(1, 2, 3)

	table := BuildAccountTable(static, nil, nil)

	assert.Equal(t, static, table.Keys())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 3, table.StaticLen())
	assert.Equal(t, 0, table.LoadedWritableLen())
}

// v0 交易：static → writable → readonly 的拼接顺序与总长度
func TestBuildAccountTable_ConcatOrder(t *testing.T) {
	static := pks(1, 2)
	writable := pks(10, 11, 12)
	readonly := pks(20)

	table := BuildAccountTable(static, writable, readonly)

	assert.Equal(t, len(static)+len(writable)+len(readonly), table.Len())
	assert.Equal(t, pks(1, 2, 10, 11, 12, 20), table.Keys())
	assert.Equal(t, 2, table.StaticLen())
	assert.Equal(t, 3, table.LoadedWritableLen())
}

// 拼接不去重：重复地址逐项保留
func TestBuildAccountTable_KeepsDuplicates(t *testing.T) {
	table := BuildAccountTable(pks(1, 1), pks(1), nil)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, pks(1, 1, 1), table.Keys())
}

// 拼接不修改入参切片
func TestBuildAccountTable_DoesNotMutateInputs(t *testing.T) {
	static := pks(1, 2)
	writable := pks(10)
	staticCopy := append([]types.Pubkey(nil), static...)
	writableCopy := append([]types.Pubkey(nil), writable...)

	_ = BuildAccountTable(static, writable, nil)

	assert.Equal(t, staticCopy, static)
	assert.Equal(t, writableCopy, writable)
}

func TestAccountTable_GetAndIndexOf(t *testing.T) {
	table := BuildAccountTable(pks(1, 2), pks(10), pks(20))

	got, ok := table.Get(2)
	assert.True(t, ok)
	assert.Equal(t, pk(10), got)

	_, ok = table.Get(4)
	assert.False(t, ok)
	_, ok = table.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, 3, table.IndexOf(pk(20)))
	assert.Equal(t, -1, table.IndexOf(pk(99)))
}

// 重复地址取首个位置
func TestAccountTable_IndexOfFirstOccurrence(t *testing.T) {
	table := BuildAccountTable(pks(1, 2, 2), nil, nil)
	assert.Equal(t, 1, table.IndexOf(pk(2)))
}

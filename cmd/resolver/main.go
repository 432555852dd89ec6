package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"tx-resolver-sol/internal/config"
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/fixture"
	"tx-resolver-sol/internal/logic/resolver"
	"tx-resolver-sol/internal/pkg/logger"
	"tx-resolver-sol/internal/pkg/types"
	"tx-resolver-sol/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile  = flag.String("f", "etc/resolver.yaml", "the config file")
	cluster     = flag.String("cluster", "", "override cluster (mainnet-beta / devnet / testnet)")
	programID   = flag.String("program", "", "override target program id (base58)")
	description = flag.String("desc", "", "fixture description")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <transaction_signature> <output_file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	signature, output := flag.Arg(0), flag.Arg(1)

	var c config.ResolverConfig
	conf.MustLoad(*configFile, &c)
	if *cluster != "" {
		c.RpcConf.Cluster = *cluster
	}
	if *programID != "" {
		c.TargetConf.ProgramID = *programID
	}

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		logx.Errorf("logger init failed: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(c, signature, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c config.ResolverConfig, signature, output string) error {
	target, err := types.TryPubkeyFromBase58(c.TargetConf.ProgramID)
	if err != nil {
		return fmt.Errorf("invalid target program id: %w", err)
	}
	labels, err := config.LoadLabelOverrides(c.TargetConf.LabelsFile)
	if err != nil {
		return err
	}

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}
	defer serviceContext.Close()

	ctx := context.Background()
	rec, err := serviceContext.FetchService.FetchTxRecord(ctx, signature)
	if err != nil {
		return err
	}
	logger.Infof("交易账户总数: %d (静态 %d)", len(rec.Message.AccountKeys)+
		len(rec.LoadedWritable())+len(rec.LoadedReadonly()), len(rec.Message.AccountKeys))

	res, err := resolver.ResolveTargetInstruction(rec, target, resolver.Options{
		LogSubsystemMarker: c.TargetConf.LogMarker,
		Labels:             labels,
	})
	switch {
	case errors.Is(err, resolver.ErrTargetAbsent):
		return fmt.Errorf("program %s not found in transaction %s", target, signature)
	case errors.Is(err, resolver.ErrInstructionAbsent):
		return fmt.Errorf("no instruction for program %s in transaction %s", target, signature)
	case err != nil:
		return err
	}

	logger.Infof("目标指令位于 index %d, 账户数 %d", res.Position, len(res.Accounts))
	if res.OperationName != "" {
		logger.Infof("日志指令名: %s", res.OperationName)
	} else {
		logger.Warnf("日志中未找到指令名, fixture 将使用通用描述")
	}

	record := fixture.Build(rec, res, fixture.Meta{
		Cluster:     clusterName(c),
		Description: *description,
	})
	path, err := fixture.WriteFile(output, record)
	if err != nil {
		return err
	}

	logx.Infof("fixture written to %s", path)
	return nil
}

// clusterName 返回写入 fixture 的 cluster 出处字段。
// 显式 endpoint 覆盖时无法断言 cluster，保留配置名即可。
func clusterName(c config.ResolverConfig) string {
	if c.RpcConf.Cluster != "" {
		return c.RpcConf.Cluster
	}
	return consts.ClusterMainnetBeta
}

package mining

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/google/uuid"

	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

const (
	placeholderBits   = 0x1d00ffff
	placeholderTarget = "00000000ffff0000000000000000000000000000000000000000000000000000"
	zeroHash          = "0000000000000000000000000000000000000000000000000000000000000000"
)

// JobSource supplies work and accepts shares. *client.NodeClient implements it.
type JobSource interface {
	GetBlockTemplate(ctx context.Context) (*client.BlockTemplate, error)
	SubmitShare(ctx context.Context, share client.Share) (accepted bool, reason string, err error)
}

// work is a job plus everything the hash loop needs precomputed
type work struct {
	job    model.MiningJob
	header wire.BlockHeader
	target *big.Int
}

func newWork(job model.MiningJob) (*work, error) {
	prev, err := chainhash.NewHashFromStr(job.PrevHash)
	if err != nil {
		return nil, fmt.Errorf("invalid prevHash: %w", err)
	}
	merkle, err := chainhash.NewHashFromStr(job.MerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid merkleRoot: %w", err)
	}

	var target *big.Int
	if job.Target != "" {
		t, ok := new(big.Int).SetString(strings.TrimPrefix(job.Target, "0x"), 16)
		if !ok || t.Sign() < 0 {
			return nil, fmt.Errorf("invalid target %q", job.Target)
		}
		target = t
	} else {
		target = blockchain.CompactToBig(job.Bits)
	}

	return &work{
		job: job,
		header: wire.BlockHeader{
			Version:    job.Version,
			PrevBlock:  *prev,
			MerkleRoot: *merkle,
			Timestamp:  time.Unix(int64(job.Time), 0),
			Bits:       job.Bits,
		},
		target: target,
	}, nil
}

// jobFromTemplate converts a node template into an immutable job
func jobFromTemplate(tmpl *client.BlockTemplate, now time.Time) (model.MiningJob, error) {
	bits, err := strconv.ParseUint(strings.TrimPrefix(tmpl.Bits, "0x"), 16, 32)
	if err != nil {
		return model.MiningJob{}, fmt.Errorf("invalid bits %q: %w", tmpl.Bits, err)
	}
	difficulty := tmpl.Difficulty
	if difficulty <= 0 {
		difficulty = 1
	}
	return model.MiningJob{
		JobID:      tmpl.PreviousBlockHash + "-" + strconv.FormatInt(now.UnixMilli(), 10),
		Version:    tmpl.Version,
		PrevHash:   tmpl.PreviousBlockHash,
		MerkleRoot: tmpl.MerkleRootHash,
		Time:       tmpl.CurTime,
		Bits:       uint32(bits),
		Target:     tmpl.Target,
		Difficulty: difficulty,
		FetchedAt:  now,
	}, nil
}

// placeholderWork builds the placeholder header directly; it has no inputs that can be invalid
func placeholderWork(now time.Time) *work {
	job := placeholderJob(now)
	return &work{
		job: job,
		header: wire.BlockHeader{
			Version:   job.Version,
			Timestamp: time.Unix(int64(job.Time), 0),
			Bits:      job.Bits,
		},
		target: blockchain.CompactToBig(job.Bits),
	}
}

// placeholderJob keeps the loop alive while the node is unreachable.
// Its id is namespaced so it is never mistaken for real work.
func placeholderJob(now time.Time) model.MiningJob {
	return model.MiningJob{
		JobID:       model.PlaceholderJobPrefix + uuid.NewString(),
		Version:     1,
		PrevHash:    zeroHash,
		MerkleRoot:  zeroHash,
		Time:        uint32(now.Unix()),
		Bits:        placeholderBits,
		Target:      placeholderTarget,
		Difficulty:  1,
		Placeholder: true,
		FetchedAt:   now,
	}
}

// meetsTarget compares the hash as a 256-bit integer against target
func meetsTarget(hash *chainhash.Hash, target *big.Int) bool {
	return blockchain.HashToBig(hash).Cmp(target) <= 0
}

package db

import (
	"context"
	"testing"
	"time"

	"github.com/NilFoundation/voxchain/core/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type SuiteBadgerDb struct {
	suite.Suite
	db DB
}

func (suite *SuiteBadgerDb) SetupTest() {
	var err error
	suite.db, err = NewBadgerDb(suite.T().TempDir())
	suite.Require().NoError(err)
}

func (suite *SuiteBadgerDb) TearDownTest() {
	suite.db.Close()
}

func (suite *SuiteBadgerDb) TestTransaction() {
	ctx := context.Background()

	tx, err := suite.db.CreateRwTx(ctx)
	suite.Require().NoError(err)
	defer tx.Rollback()

	tx2, err := suite.db.CreateRwTx(ctx)
	suite.Require().NoError(err)
	defer tx2.Rollback()

	suite.Require().NoError(tx.Put("tbl", []byte("foo"), []byte("bar")))

	val, err := tx.Get("tbl", []byte("foo"))
	suite.Require().NoError(err)
	suite.Equal([]byte("bar"), val)

	has, err := tx.Exists("tbl", []byte("foo"))
	suite.Require().NoError(err)
	suite.True(has, "Key 'foo' should be present")

	// Parallel transactions don't see uncommitted changes.
	has, err = tx2.Exists("tbl", []byte("foo"))
	suite.Require().NoError(err)
	suite.False(has, "Key 'foo' should not be present")

	suite.Require().NoError(tx.Commit())

	tx3, err := suite.db.CreateRoTx(ctx)
	suite.Require().NoError(err)
	defer tx3.Rollback()

	val, err = tx3.Get("tbl", []byte("foo"))
	suite.Require().NoError(err)
	suite.Equal([]byte("bar"), val)

	_, err = tx3.Get("tbl", []byte("baz"))
	suite.Require().ErrorIs(err, ErrKeyNotFound)

	has, err = tx3.Exists("other", []byte("foo"))
	suite.Require().NoError(err)
	suite.False(has, "Key 'foo' should not be present in other table")
}

func (suite *SuiteBadgerDb) TestRange() {
	ctx := context.Background()

	tx, err := suite.db.CreateRwTx(ctx)
	suite.Require().NoError(err)
	defer tx.Rollback()

	for _, k := range []string{"a", "b", "c", "d"} {
		suite.Require().NoError(tx.Put("tbl", []byte(k), []byte("v"+k)))
	}
	suite.Require().NoError(tx.Put("tbl2", []byte("a"), []byte("other")))
	suite.Require().NoError(tx.Delete("tbl", []byte("d")))

	iter, err := tx.Range("tbl", []byte("b"), []byte("c"))
	suite.Require().NoError(err)

	var keys []string
	for iter.HasNext() {
		k, v, err := iter.Next()
		suite.Require().NoError(err)
		suite.Equal("v"+string(k), string(v))
		keys = append(keys, string(k))
	}
	iter.Close()
	suite.Equal([]string{"b", "c"}, keys)

	iter, err = tx.Range("tbl", nil, nil)
	suite.Require().NoError(err)
	count := 0
	for iter.HasNext() {
		_, _, err := iter.Next()
		suite.Require().NoError(err)
		count++
	}
	iter.Close()
	suite.Equal(3, count)
}

func (suite *SuiteBadgerDb) TestDeployments() {
	ctx := context.Background()

	first := &types.Deployment{
		Id:          types.NewDeploymentId(),
		Contract:    "VoxChain",
		Address:     common.HexToAddress("0x2"),
		TxHash:      common.HexToHash("0xaa"),
		BlockNumber: 7,
		ChainId:     31337,
		DeployedAt:  time.Unix(1700000000, 0).UTC(),
	}
	second := &types.Deployment{
		Id:       types.NewDeploymentId(),
		Contract: "VoxChain",
		Address:  common.HexToAddress("0x1"),
		ChainId:  1,
	}

	tx, err := suite.db.CreateRwTx(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(WriteDeployment(tx, first))
	suite.Require().NoError(WriteDeployment(tx, second))
	suite.Require().NoError(tx.Commit())

	ro, err := suite.db.CreateRoTx(ctx)
	suite.Require().NoError(err)
	defer ro.Rollback()

	got, err := ReadDeployment(ro, 31337, first.Address)
	suite.Require().NoError(err)
	suite.Equal(first, got)

	_, err = ReadDeployment(ro, 1, first.Address)
	suite.Require().ErrorIs(err, ErrKeyNotFound)

	all, err := ListDeployments(ro)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(uint64(1), all[0].ChainId)
	suite.Equal(first.Id, all[1].Id)
}

func TestSuiteBadgerDb(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SuiteBadgerDb))
}

func TestBadgerDbInMemory(t *testing.T) {
	t.Parallel()

	db, err := NewBadgerDbInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	tx, err := db.CreateRoTx(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer tx.Rollback()

	all, err := ListDeployments(tx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty journal, got %d records", len(all))
	}
}

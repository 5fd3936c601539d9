package contract

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Collection is a high-level wrapper around the deployed limited-edition
// collection contract. Reads go through CallOpts so callers can pin a block
// or attach a context; the single write method mints a preset item.
type Collection struct {
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
	backend  bind.ContractBackend
}

// NewCollection connects to an already-deployed collection contract.
func NewCollection(addr common.Address, backend bind.ContractBackend) (*Collection, error) {
	parsed, err := abi.JSON(strings.NewReader(CollectionABI))
	if err != nil {
		return nil, err
	}
	bound := bind.NewBoundContract(addr, parsed, backend, backend, backend)
	return &Collection{
		abi:      parsed,
		address:  addr,
		contract: bound,
		backend:  backend,
	}, nil
}

// Address returns the contract address this binding points at.
func (c *Collection) Address() common.Address {
	return c.address
}

// PublicMint mints one instance of the given preset item to the caller.
func (c *Collection) PublicMint(opts *bind.TransactOpts, nftID *big.Int) (*types.Transaction, error) {
	return c.contract.Transact(opts, "publicMint", nftID)
}

func (c *Collection) Name(opts *bind.CallOpts) (string, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "name"); err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *Collection) Symbol(opts *bind.CallOpts) (string, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "symbol"); err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *Collection) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "balanceOf", owner); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Collection) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "totalSupply"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// GetAllNFTStatus returns the parallel supply/max/active arrays, indexed by
// preset item order.
func (c *Collection) GetAllNFTStatus(opts *bind.CallOpts) ([]*big.Int, []*big.Int, []bool, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "getAllNFTStatus"); err != nil {
		return nil, nil, nil, err
	}
	supplies := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	maxSupplies := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)
	activeFlags := *abi.ConvertType(out[2], new([]bool)).(*[]bool)
	return supplies, maxSupplies, activeFlags, nil
}

func (c *Collection) GetRemainingSupply(opts *bind.CallOpts, nftID *big.Int) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "getRemainingSupply", nftID); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Collection) GetUserRemainingMints(opts *bind.CallOpts, user common.Address, nftID *big.Int) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "getUserRemainingMints", user, nftID); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Collection) IsNFTAvailable(opts *bind.CallOpts, nftID *big.Int) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "isNFTAvailable", nftID); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Collection) TokenOfOwnerByIndex(opts *bind.CallOpts, owner common.Address, index *big.Int) (*big.Int, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "tokenOfOwnerByIndex", owner, index); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Collection) TokenURI(opts *bind.CallOpts, tokenID *big.Int) (string, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "tokenURI", tokenID); err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Package contract contains the ABI and hand-maintained binding for the
// limited collection contract. Regenerate with abigen when the contract
// source is available:
//
//	abigen --abi collection.abi --pkg contract --out collection_gen.go
package contract

// CollectionABI is the ABI of the limited-edition collection contract.
const CollectionABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "name",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "totalSupply",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "getAllNFTStatus",
		"outputs": [
			{"name": "supplies",    "type": "uint256[]"},
			{"name": "maxSupplies", "type": "uint256[]"},
			{"name": "activeFlags", "type": "bool[]"}
		],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "nftId", "type": "uint256"}],
		"name": "getRemainingSupply",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [
			{"name": "user",  "type": "address"},
			{"name": "nftId", "type": "uint256"}
		],
		"name": "getUserRemainingMints",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "nftId", "type": "uint256"}],
		"name": "isNFTAvailable",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "index", "type": "uint256"}
		],
		"name": "tokenOfOwnerByIndex",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "tokenId", "type": "uint256"}],
		"name": "tokenURI",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [{"name": "nftId", "type": "uint256"}],
		"name": "publicMint",
		"outputs": [{"name": "tokenId", "type": "uint256"}],
		"payable": true,
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true,  "name": "minter",  "type": "address"},
			{"indexed": true,  "name": "nftId",   "type": "uint256"},
			{"indexed": false, "name": "tokenId", "type": "uint256"}
		],
		"name": "NFTMinted",
		"type": "event"
	}
]`

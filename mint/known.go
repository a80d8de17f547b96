package mint

var (
	// USDT is the Tether USD mint on Solana mainnet.
	USDT = MustParsePublicKey("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")

	// USDC is the USD Coin mint on Solana mainnet.
	USDC = MustParsePublicKey("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
)

type Known struct {
	Symbol  string
	Label   string
	Address string
	Key     PublicKey
}

// KnownMints returns the mints decoded when no address is given, in printing
// order.
func KnownMints() []Known {
	return []Known{
		{Symbol: "USDT", Label: "USDT Mint Byte Array", Address: USDT.String(), Key: USDT},
		{Symbol: "USDC", Label: "USDC Mint Byte Array", Address: USDC.String(), Key: USDC},
	}
}

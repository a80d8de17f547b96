package printer

var _ Print = (*RustPrinter)(nil)

// RustPrinter renders bytes as a Solana program public key constant.
type RustPrinter struct {
}

func (p *RustPrinter) Print(data []byte) string {
	return "Pubkey::new_from_array([" + joinDecimal(data) + "])"
}

package payment

import "strings"

// InstructionMap holds the step-by-step payment guide per method type.
// Steps may carry {{placeholders}} resolved by InjectVariables.
var InstructionMap = map[string][]string{
	TypeBankTransfer: {
		"Login ke mobile banking",
		"Pilih transfer antar bank",
		"Masukkan nomor rekening {{account}}",
		"Input nominal {{amount}} sesuai tagihan",
		"Konfirmasi transfer",
		"Screenshot bukti berhasil",
	},

	TypeEWallet: {
		"Buka aplikasi {{method}}",
		"Pilih \"Transfer\" atau \"Kirim\"",
		"Input nomor {{account}}",
		"Masukkan nominal {{amount}}",
		"Konfirmasi transfer",
		"Screenshot bukti berhasil",
	},

	TypeQRCode: {
		"Buka aplikasi e-wallet atau mobile banking yang mendukung QRIS",
		"Pilih \"Scan QR\" atau \"QRIS\"",
		"Scan QR Code yang diberikan",
		"Masukkan nominal {{amount}}",
		"Konfirmasi pembayaran",
		"Screenshot bukti berhasil",
	},
}

// GetInstructions returns the guide for a method type, or a generic
// fallback for unknown types.
func GetInstructions(methodType string) []string {
	if steps, ok := InstructionMap[methodType]; ok {
		return steps
	}

	return []string{
		"Transfer sesuai nominal {{amount}}",
		"Screenshot bukti pembayaran",
		"Kirim bukti ke admin",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in every step.
// Placeholders without a matching key are left as-is.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(updated, "{{"+key+"}}", value)
		}
		result = append(result, updated)
	}

	return result
}

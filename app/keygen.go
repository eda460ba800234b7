package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"shoestore_be/helper/watoken"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a fresh PRIVATEKEY/PUBLICKEY pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, publicKey := watoken.GenerateKey()
		fmt.Fprintf(cmd.OutOrStdout(), "PRIVATEKEY=%s\nPUBLICKEY=%s\n", privateKey, publicKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}

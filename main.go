package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox/cmd"
)

func main() {
	logrus.SetOutput(os.Stderr)
	if os.Getenv("SEALBOX_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		runInit(os.Args[2:])
	case "keygen":
		runKeygen(os.Args[2:])
	case "encrypt":
		runEncrypt(os.Args[2:])
	case "decrypt":
		runDecrypt(os.Args[2:])
	case "drivers":
		runDrivers(os.Args[2:])
	case "status":
		runStatus(os.Args[2:])
	case "completion":
		runCompletion(os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	driver := fs.String("driver", "", "Driver to configure (default: first supported)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Init(*driver)
}

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	length := fs.Int("length", 32, "Key length in bytes")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Keygen(*length)
}

func runEncrypt(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	driver := fs.String("driver", "", "Driver to use for this operation")
	key := fs.String("key", "", "Hex-encoded key material")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Encrypt(*driver, *key, fs.Arg(0))
}

func runDecrypt(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	driver := fs.String("driver", "", "Driver to use for this operation")
	key := fs.String("key", "", "Hex-encoded key material")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Decrypt(*driver, *key, fs.Arg(0))
}

func runDrivers(args []string) {
	fs := flag.NewFlagSet("drivers", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Drivers()
}

func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Status()
}

func runCompletion(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sealbox completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

func printUsage() {
	fmt.Println("sealbox - Pluggable symmetric encryption for files and pipes")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sealbox <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init        Create a .sealbox store with a fresh random key")
	fmt.Println("  keygen      Generate a random key and print it as hex")
	fmt.Println("  encrypt     Encrypt a file or stdin, output base64")
	fmt.Println("  decrypt     Decrypt base64 input back to plaintext")
	fmt.Println("  drivers     List supported drivers and their availability")
	fmt.Println("  status      Show resolved configuration and store state")
	fmt.Println("  completion  Generate shell completions")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sealbox init                        # Create store with generated key")
	fmt.Println("  sealbox encrypt secrets.txt         # Encrypt with stored config")
	fmt.Println("  echo hi | sealbox encrypt           # Encrypt stdin")
	fmt.Println("  sealbox decrypt --driver Sodium c.b64")
	fmt.Println()
	fmt.Println("Key material comes from the store, the --key flag (hex), the")
	fmt.Println("SEALBOX_KEY environment variable (hex), or an interactive prompt.")
	fmt.Println("Set SEALBOX_DEBUG=1 for debug logging.")
	fmt.Println()
	fmt.Println("Use 'sealbox help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "init":
		fmt.Println("sealbox init [--driver <name>]")
		fmt.Println()
		fmt.Println("Creates a .sealbox store in the current directory with a fresh")
		fmt.Println("32-byte random key and the chosen driver. Subsequent encrypt and")
		fmt.Println("decrypt commands pick both up automatically.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --driver    Driver to configure (default: first supported)")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  sealbox init")
		fmt.Println("  sealbox init --driver Sodium")
	case "keygen":
		fmt.Println("sealbox keygen [--length <bytes>]")
		fmt.Println()
		fmt.Println("Generates cryptographically secure random key material and prints")
		fmt.Println("it hex-encoded, suitable for --key or the SEALBOX_KEY variable.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --length    Key length in bytes (default 32)")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  sealbox keygen")
		fmt.Println("  export SEALBOX_KEY=$(sealbox keygen)")
	case "encrypt":
		fmt.Println("sealbox encrypt [--driver <name>] [--key <hex>] [<file>]")
		fmt.Println()
		fmt.Println("Encrypts the file, or stdin when no file is given, and writes the")
		fmt.Println("ciphertext base64-encoded to stdout. Driver and key fall back to")
		fmt.Println("the .sealbox store, then to the built-in defaults.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --driver    Driver to use for this operation")
		fmt.Println("  --key       Hex-encoded key material")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  sealbox encrypt secrets.txt > secrets.b64")
		fmt.Println("  tar cz . | sealbox encrypt --key \"$(sealbox keygen)\"")
	case "decrypt":
		fmt.Println("sealbox decrypt [--driver <name>] [--key <hex>] [<file>]")
		fmt.Println()
		fmt.Println("Decrypts base64 ciphertext from the file, or stdin when no file is")
		fmt.Println("given, and writes the plaintext to stdout. The driver and key must")
		fmt.Println("match the ones used for encryption.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --driver    Driver to use for this operation")
		fmt.Println("  --key       Hex-encoded key material")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  sealbox decrypt secrets.b64 > secrets.txt")
		fmt.Println("  sealbox decrypt < secrets.b64")
	case "drivers":
		fmt.Println("sealbox drivers")
		fmt.Println()
		fmt.Println("Lists the supported drivers in preference order and whether each")
		fmt.Println("one passed its availability self-test on this system.")
		fmt.Println()
		fmt.Println("Does not require a key.")
	case "status":
		fmt.Println("sealbox status")
		fmt.Println()
		fmt.Println("Shows the store state, the resolved driver, whether a key is")
		fmt.Println("configured, and driver availability. Key material is never")
		fmt.Println("printed.")
		fmt.Println()
		fmt.Println("Does not require a key.")
	case "completion":
		fmt.Println("sealbox completion <bash|zsh|fish>")
		fmt.Println()
		fmt.Println("Outputs shell completion script for the specified shell.")
		fmt.Println()
		fmt.Println("Setup:")
		fmt.Println("  # Bash - add to ~/.bashrc")
		fmt.Println("  eval \"$(sealbox completion bash)\"")
		fmt.Println()
		fmt.Println("  # Zsh - add to ~/.zshrc")
		fmt.Println("  eval \"$(sealbox completion zsh)\"")
		fmt.Println()
		fmt.Println("  # Fish - add to ~/.config/fish/config.fish")
		fmt.Println("  sealbox completion fish | source")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}

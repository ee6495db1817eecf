package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/festivepros/inquiry/internal/inquiry"
	"github.com/festivepros/inquiry/internal/logger"
)

// inquire is the command-line front end to the inquiry service. It plays the
// role the storefront form plays in a browser: it picks up the selected
// product, previews the price breakdown, validates the customer's details,
// and submits the inquiry.

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "inquire",
	Short: "Submit product inquiries to the storefront service",
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Stash a product selection for the inquiry flow",
	RunE:  runSelect,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show the price breakdown for the selected product",
	RunE:  runQuote,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Validate and submit an inquiry for the selected product",
	RunE:  runSend,
}

var (
	selName        string
	selPrice       float64
	selImage       string
	selDescription string

	quoteState string

	firstName        string
	lastName         string
	email            string
	phoneNumber      string
	message          string
	preferredContact string
	state            string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "inquiry service base URL")

	selectCmd.Flags().StringVar(&selName, "name", "", "product name")
	selectCmd.Flags().Float64Var(&selPrice, "price", 0, "product list price")
	selectCmd.Flags().StringVar(&selImage, "image", "", "product image URL")
	selectCmd.Flags().StringVar(&selDescription, "description", "", "product description HTML")
	selectCmd.MarkFlagRequired("name")
	selectCmd.MarkFlagRequired("price")

	quoteCmd.Flags().StringVar(&quoteState, "state", "", "buyer state (PA or NJ)")

	sendCmd.Flags().StringVar(&firstName, "first-name", "", "customer first name")
	sendCmd.Flags().StringVar(&lastName, "last-name", "", "customer last name")
	sendCmd.Flags().StringVar(&email, "email", "", "customer email")
	sendCmd.Flags().StringVar(&phoneNumber, "phone", "", "customer phone number")
	sendCmd.Flags().StringVar(&message, "message", "", "inquiry message")
	sendCmd.Flags().StringVar(&preferredContact, "preferred-contact", inquiry.ContactEmail, "preferred contact method (email or phone)")
	sendCmd.Flags().StringVar(&state, "state", "", "buyer state (PA or NJ)")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	client := inquiry.NewClient(serverURL)

	p := inquiry.ProductSnapshot{
		Name:        selName,
		Price:       selPrice,
		Image:       selImage,
		Description: selDescription,
	}
	if err := client.Select(cmd.Context(), p); err != nil {
		return err
	}

	fmt.Printf("Selected %q ($%.2f)\n", p.Name, p.Price)
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	client := inquiry.NewClient(serverURL)

	product, err := client.SelectedProduct(cmd.Context())
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("no product selected; run `inquire select` first")
	}

	q := inquiry.NewQuote(product.Price, quoteState)

	fmt.Printf("%s\n", product.Name)
	fmt.Printf("  Price:               $%.2f  (was $%.2f, %s)\n", q.DisplayPrice, q.StruckPrice, q.Badge)
	fmt.Printf("  Subtotal:            $%.2f\n", q.Subtotal)
	fmt.Printf("  Sales Tax (6%%):      $%.2f\n", q.SalesTax)
	if q.OutOfStateFee != 0 {
		fmt.Printf("  Out of State Fee:    $%.2f\n", q.OutOfStateFee)
	}
	fmt.Printf("  Estimated Total:     $%.2f\n", q.Total)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	client := inquiry.NewClient(serverURL)
	log := logger.New("info", "console")

	product, err := client.SelectedProduct(cmd.Context())
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("no product selected; run `inquire select` first")
	}

	ctrl := inquiry.NewController(product, client, log)
	ctrl.SetField(inquiry.FieldFirstName, firstName)
	ctrl.SetField(inquiry.FieldLastName, lastName)
	ctrl.SetField(inquiry.FieldEmail, email)
	ctrl.SetField(inquiry.FieldPhoneNumber, phoneNumber)
	ctrl.SetField(inquiry.FieldMessage, message)
	ctrl.SetField(inquiry.FieldPreferredContact, preferredContact)
	ctrl.SetField(inquiry.FieldState, state)

	if err := ctrl.Submit(cmd.Context()); err != nil {
		return fmt.Errorf("inquiry could not be delivered: %w", err)
	}

	if errs := ctrl.Errors(); len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for f := range errs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, errs[f])
		}
		return fmt.Errorf("inquiry has %d invalid field(s)", len(errs))
	}

	fmt.Println("Thank you for your interest! We've received your inquiry and will get back to you soon.")
	return nil
}

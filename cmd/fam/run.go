package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/famcli/fam/internal/cli"
	"github.com/famcli/fam/internal/common"
	"github.com/famcli/fam/internal/config"
	"github.com/famcli/fam/internal/engine"
	"github.com/famcli/fam/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive moderation session",
		Long: `Registers a user (or loads the built-in test user) and enters the
main menu: view budgets, record transactions, view transactions by
budget, and review the bank account.`,
		RunE: runSession,
	}

	cmd.Flags().Bool("test", false, "Skip registration and load the test user")
	_ = viper.BindPFlag("run.test", cmd.Flags().Lookup("test"))

	return cmd
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	display := cli.NewDisplay(os.Stdout)

	eng, err := startSession(ctx, prompter)
	if err != nil || eng == nil {
		return sessionErr(err)
	}

	name, _, userType := eng.User()
	common.LogInfo("Session started", common.Fields{
		"user":      name,
		"user_type": userType,
	})

	err = mainLoop(ctx, eng, prompter, display)
	return sessionErr(err)
}

// startSession runs the startup menu and returns the session engine,
// or nil when the user chose to exit.
func startSession(ctx context.Context, prompter *cli.Prompter) (*engine.Engine, error) {
	var reg model.Registration
	var err error

	if viper.GetBool("run.test") {
		reg, err = config.TestUserRegistration(viper.GetViper())
		if err != nil {
			return nil, common.NewUserError("failed to load the test user fixture", err)
		}
	} else {
		choice, choiceErr := prompter.StartupChoice(ctx)
		if choiceErr != nil {
			return nil, choiceErr
		}

		switch choice {
		case cli.StartupCreateUser:
			reg, err = prompter.Registration(ctx)
			if err != nil {
				return nil, err
			}
		case cli.StartupLoadTest:
			reg, err = config.TestUserRegistration(viper.GetViper())
			if err != nil {
				return nil, common.NewUserError("failed to load the test user fixture", err)
			}
		case cli.StartupExit:
			return nil, nil
		}
	}

	user, err := model.NewUser(reg)
	if err != nil {
		return nil, common.NewUserError("failed to register the user", err)
	}

	return engine.New(user), nil
}

func mainLoop(ctx context.Context, eng *engine.Engine, prompter *cli.Prompter, display *cli.Display) error {
	for {
		choice, err := prompter.MainMenuChoice(ctx)
		if err != nil {
			return err
		}

		switch choice {
		case cli.MainViewBudgets:
			display.Budgets(eng.Budgets())
		case cli.MainRecordTransaction:
			if err := recordTransaction(ctx, eng, prompter, display); err != nil {
				return err
			}
		case cli.MainViewTransactions:
			if err := viewTransactions(ctx, eng, prompter, display); err != nil {
				return err
			}
		case cli.MainViewAccountDetails:
			display.Account(eng.Account())
			display.Transactions(eng.Transactions())
			display.Summary(eng.Summary())
		case cli.MainExit:
			fmt.Fprintln(os.Stdout, "Exiting F.A.M. application...")
			return nil
		}
	}
}

func recordTransaction(ctx context.Context, eng *engine.Engine, prompter *cli.Prompter, display *cli.Display) error {
	tx, err := prompter.TransactionInput(ctx)
	if err != nil {
		return err
	}

	outcome, err := eng.RecordTransaction(tx)
	if err != nil {
		return err
	}

	budget, _ := eng.Budget(tx.Category)
	if !outcome.Accepted {
		display.Rejection(outcome.Reasons, eng.Account(), budget)
		return nil
	}

	fmt.Fprintln(os.Stdout, cli.FormatSuccess(fmt.Sprintf("Recorded transaction #%d", outcome.Sequence)))
	entries := eng.Transactions()
	display.Transaction(entries[len(entries)-1])
	display.Budget(budget)
	display.Signals(outcome.Signals, eng.Policy())

	return nil
}

func viewTransactions(ctx context.Context, eng *engine.Engine, prompter *cli.Prompter, display *cli.Display) error {
	choice, err := prompter.CategoryChoice(ctx)
	if err != nil {
		return err
	}
	if choice == cli.CategoryBack {
		return nil
	}

	category, err := model.CategoryFromCode(choice)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nTransactions in the %s category:\n", category.DisplayName())
	display.Transactions(eng.TransactionsByCategory(category))
	return nil
}

// sessionErr maps a canceled prompt to a clean exit.
func sessionErr(err error) error {
	if err == nil || errors.Is(err, cli.ErrInputCancelled) {
		return nil
	}
	common.LogError(err, "session aborted", nil)
	return err
}

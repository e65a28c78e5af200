package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"money-manager/internal/models"
	"money-manager/internal/repository"
	"money-manager/pkg/config"
	"money-manager/pkg/logger"
	"money-manager/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sample templates the seeder draws from. Categories match the default set
// created at registration.
var sampleTransactions = []struct {
	Type        models.TransactionType
	Category    string
	Description string
	Amount      float64
	Division    models.Division
}{
	{models.TransactionTypeIncome, "Salary", "Monthly Salary", 5000, models.DivisionOffice},
	{models.TransactionTypeIncome, "Freelance", "Website Project", 1200, models.DivisionPersonal},
	{models.TransactionTypeIncome, "Investment", "Stock Dividend", 300, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Food", "Lunch at Cafe", 25, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Food", "Grocery Shopping", 150, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Transport", "Uber Ride", 18, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Transport", "Fuel Refill", 45, models.DivisionOffice},
	{models.TransactionTypeExpense, "Bills", "Electricity Bill", 120, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Bills", "Internet Subscription", 60, models.DivisionOffice},
	{models.TransactionTypeExpense, "Entertainment", "Movie Night", 40, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Shopping", "New Headphones", 200, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Medical", "Pharmacy", 35, models.DivisionPersonal},
	{models.TransactionTypeExpense, "Food", "Dinner with Client", 85, models.DivisionOffice},
}

const transactionCount = 50

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Seed against the most recently registered user.
	var userID uuid.UUID
	var email string
	err = db.QueryRow(ctx, "SELECT id, email FROM users ORDER BY created_at DESC LIMIT 1").Scan(&userID, &email)
	if err != nil {
		appLogger.Fatal("No users found, register a user in the app first", zap.Error(err))
	}
	appLogger.Info("Seeding transactions", zap.String("user", email))

	now := time.Now()
	start := now.AddDate(0, 0, -45)

	transactions := make([]*models.Transaction, 0, transactionCount)
	for i := 0; i < transactionCount; i++ {
		template := sampleTransactions[rand.Intn(len(sampleTransactions))]
		date := start.Add(time.Duration(rand.Int63n(int64(now.Sub(start)))))

		transactions = append(transactions, &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        template.Type,
			Amount:      template.Amount + float64(rand.Intn(50)),
			Category:    template.Category,
			Division:    template.Division,
			Description: template.Description,
			Date:        date,
			Account:     "default",
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := txRepo.CreateBatch(ctx, transactions); err != nil {
		appLogger.Fatal("Failed to insert transactions", zap.Error(err))
	}

	appLogger.Info("Seeding completed", zap.Int("transactions", len(transactions)))
}

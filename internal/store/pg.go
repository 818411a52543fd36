package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the registry tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.ContentRecord{},
		&schema.AccessGrant{},
		&schema.OwnedIndexEntry{},
		&schema.Account{},
		&schema.OwnershipCredential{},
		&schema.RoleAssignment{},
		&schema.KeyValueStore{},
		&schema.WebhookClient{},
		&schema.WebhookDelivery{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Atomically runs fn against a transaction-scoped Store. Nested calls reuse
// the surrounding transaction through gorm savepoints.
func (s *pgStore) Atomically(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// CreateContent inserts a new record and appends it to the owner's reverse index
func (s *pgStore) CreateContent(ctx context.Context, input CreateContentInput) (*schema.ContentRecord, error) {
	var record schema.ContentRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.ContentRecord{}).
			Where("fingerprint = ?", input.Fingerprint).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check fingerprint uniqueness: %w", err)
		}
		if count > 0 {
			return domain.ErrFingerprintExists
		}

		record = schema.ContentRecord{
			Owner:               input.Owner,
			Fingerprint:         input.Fingerprint,
			MetadataFingerprint: input.MetadataFingerprint,
			Category:            input.Category,
			Status:              domain.StatusActive,
			Price:               input.Price,
			AITrainingAllowed:   input.AITrainingAllowed,
			RegisteredAt:        input.RegisteredAt,
		}

		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrFingerprintExists
			}
			return fmt.Errorf("failed to create content record: %w", err)
		}

		if err := appendOwnedIndex(tx, input.Owner, record.ID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetContent retrieves a record by id, or nil if it does not exist
func (s *pgStore) GetContent(ctx context.Context, id uint64) (*schema.ContentRecord, error) {
	if id == 0 {
		return nil, nil
	}

	var record schema.ContentRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content record: %w", err)
	}

	return &record, nil
}

// GetContentForUpdate retrieves a record by id with SELECT ... FOR UPDATE,
// holding the row against concurrent writers until the transaction commits
func (s *pgStore) GetContentForUpdate(ctx context.Context, id uint64) (*schema.ContentRecord, error) {
	if id == 0 {
		return nil, nil
	}

	var record schema.ContentRecord
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content record for update: %w", err)
	}

	return &record, nil
}

// GetContentByFingerprint retrieves a record by content fingerprint, or nil
func (s *pgStore) GetContentByFingerprint(ctx context.Context, fingerprint string) (*schema.ContentRecord, error) {
	var record schema.ContentRecord
	err := s.db.WithContext(ctx).Where("fingerprint = ?", fingerprint).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content record by fingerprint: %w", err)
	}

	return &record, nil
}

// UpdateContent mutates the metadata fingerprint, price, and AI flag
func (s *pgStore) UpdateContent(ctx context.Context, id uint64, input UpdateContentInput) error {
	result := s.db.WithContext(ctx).Model(&schema.ContentRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"metadata_fingerprint": input.MetadataFingerprint,
			"price":                input.Price,
			"ai_training_allowed":  input.AITrainingAllowed,
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update content record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContentNotFound
	}

	return nil
}

// UpdateContentStatus moves a record between lifecycle states
func (s *pgStore) UpdateContentStatus(ctx context.Context, id uint64, status domain.ContentStatus) error {
	result := s.db.WithContext(ctx).Model(&schema.ContentRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update content status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContentNotFound
	}

	return nil
}

// ListOwnedContent returns the ids owned by a principal in index order
func (s *pgStore) ListOwnedContent(ctx context.Context, owner domain.Principal) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&schema.OwnedIndexEntry{}).
		Where("owner = ?", owner).
		Order("position ASC").
		Pluck("content_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owned content: %w", err)
	}

	return ids, nil
}

// TransferOwnership reassigns a record's owner and fixes up both sides of
// the reverse index. The reverse index and the owner field change in the
// same transaction so they can never disagree.
func (s *pgStore) TransferOwnership(ctx context.Context, id uint64, from, to domain.Principal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.ContentRecord{}).
			Where("id = ? AND owner = ?", id, from).
			Updates(map[string]interface{}{
				"owner":      to,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to reassign owner: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrContentNotFound
		}

		if err := removeOwnedIndex(tx, from, id); err != nil {
			return err
		}

		return appendOwnedIndex(tx, to, id)
	})
}

// appendOwnedIndex appends a content id at the end of an owner's list
func appendOwnedIndex(tx *gorm.DB, owner domain.Principal, contentID uint64) error {
	var count int64
	if err := tx.Model(&schema.OwnedIndexEntry{}).
		Where("owner = ?", owner).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count owned index entries: %w", err)
	}

	entry := schema.OwnedIndexEntry{
		Owner:     owner,
		ContentID: contentID,
		Position:  uint64(count),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append owned index entry: %w", err)
	}

	return nil
}

// removeOwnedIndex removes a content id from an owner's list by moving the
// last entry into the vacated position (unordered removal)
func removeOwnedIndex(tx *gorm.DB, owner domain.Principal, contentID uint64) error {
	var entry schema.OwnedIndexEntry
	if err := tx.Where("owner = ? AND content_id = ?", owner, contentID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContentNotFound
		}
		return fmt.Errorf("failed to find owned index entry: %w", err)
	}

	var last schema.OwnedIndexEntry
	if err := tx.Where("owner = ?", owner).
		Order("position DESC").
		First(&last).Error; err != nil {
		return fmt.Errorf("failed to find last owned index entry: %w", err)
	}

	if err := tx.Delete(&schema.OwnedIndexEntry{}, entry.ID).Error; err != nil {
		return fmt.Errorf("failed to delete owned index entry: %w", err)
	}

	// Swap-with-last: the vacated position is filled by the final entry
	// unless the removed entry was the final one.
	if last.ID != entry.ID {
		if err := tx.Model(&schema.OwnedIndexEntry{}).
			Where("id = ?", last.ID).
			Update("position", entry.Position).Error; err != nil {
			return fmt.Errorf("failed to move last owned index entry: %w", err)
		}
	}

	return nil
}

// UpsertAccessGrant adds a principal to a record's authorized set
func (s *pgStore) UpsertAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal, source schema.GrantSource) error {
	grant := schema.AccessGrant{
		ContentID: contentID,
		Principal: principal,
		Source:    source,
	}

	// Granting twice is not an error; the earlier grant wins.
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}, {Name: "principal"}},
		DoNothing: true,
	}).Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to upsert access grant: %w", err)
	}

	return nil
}

// DeleteAccessGrant removes a principal from the authorized set
func (s *pgStore) DeleteAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal) error {
	err := s.db.WithContext(ctx).
		Where("content_id = ? AND principal = ?", contentID, principal).
		Delete(&schema.AccessGrant{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete access grant: %w", err)
	}

	return nil
}

// HasAccessGrant checks membership in the explicit authorized set
func (s *pgStore) HasAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.AccessGrant{}).
		Where("content_id = ? AND principal = ?", contentID, principal).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check access grant: %w", err)
	}

	return count > 0, nil
}

// GetAccount retrieves an account, or nil if it does not exist
func (s *pgStore) GetAccount(ctx context.Context, principal domain.Principal) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("principal = ?", principal).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// CreditAccount adds funds to an account, creating it if absent
func (s *pgStore) CreditAccount(ctx context.Context, principal domain.Principal, amount uint64) error {
	account := schema.Account{
		Principal: principal,
		Balance:   amount,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "principal"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("accounts.balance + ?", amount),
			"updated_at": time.Now(),
		}),
	}).Create(&account).Error
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}

	return nil
}

// SetAccountFrozen toggles whether an account can receive value
func (s *pgStore) SetAccountFrozen(ctx context.Context, principal domain.Principal, frozen bool) error {
	account := schema.Account{
		Principal: principal,
		Frozen:    frozen,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "principal"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"frozen":     frozen,
			"updated_at": time.Now(),
		}),
	}).Create(&account).Error
	if err != nil {
		return fmt.Errorf("failed to set account frozen flag: %w", err)
	}

	return nil
}

// Transfer moves amount base units between two accounts. The debit and
// credit happen in one transaction; a failed credit rolls back the debit.
func (s *pgStore) Transfer(ctx context.Context, from, to domain.Principal, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Account{}).
			Where("principal = ? AND balance >= ?", from, amount).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", amount),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to debit account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&schema.Account{}).
				Where("principal = ?", from).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check debit account: %w", err)
			}
			if count == 0 {
				return domain.ErrAccountNotFound
			}
			return domain.ErrInsufficientFunds
		}

		var recipient schema.Account
		err := tx.Where("principal = ?", to).First(&recipient).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			recipient = schema.Account{Principal: to, Balance: amount}
			if err := tx.Create(&recipient).Error; err != nil {
				return fmt.Errorf("failed to create recipient account: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("failed to get recipient account: %w", err)
		}

		if recipient.Frozen {
			return domain.ErrAccountFrozen
		}

		if err := tx.Model(&schema.Account{}).
			Where("principal = ?", to).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", amount),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to credit account: %w", err)
		}

		return nil
	})
}

// MintCredential creates the one credential for a content id
func (s *pgStore) MintCredential(ctx context.Context, holder domain.Principal, contentID uint64, metadataRef string) error {
	credential := schema.OwnershipCredential{
		ContentID:   contentID,
		Holder:      holder,
		MetadataRef: metadataRef,
		MintedAt:    time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&credential).Error; err != nil {
		return fmt.Errorf("failed to mint ownership credential: %w", err)
	}

	return nil
}

// TransferCredential reassigns a credential between holders
func (s *pgStore) TransferCredential(ctx context.Context, from, to domain.Principal, contentID uint64) error {
	result := s.db.WithContext(ctx).Model(&schema.OwnershipCredential{}).
		Where("content_id = ? AND holder = ?", contentID, from).
		Updates(map[string]interface{}{
			"holder":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to transfer ownership credential: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.OwnershipCredential{}).
			Where("content_id = ?", contentID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ownership credential: %w", err)
		}
		if count == 0 {
			return domain.ErrCredentialNotFound
		}
		return domain.ErrCredentialHolderMismatch
	}

	return nil
}

// CredentialHolder returns the current holder of a credential
func (s *pgStore) CredentialHolder(ctx context.Context, contentID uint64) (domain.Principal, error) {
	var credential schema.OwnershipCredential
	err := s.db.WithContext(ctx).Where("content_id = ?", contentID).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ZeroPrincipal, domain.ErrCredentialNotFound
		}
		return domain.ZeroPrincipal, fmt.Errorf("failed to get ownership credential: %w", err)
	}

	return credential.Holder, nil
}

// RoleOf returns the role assigned to a principal (RoleNone when unassigned)
func (s *pgStore) RoleOf(ctx context.Context, principal domain.Principal) (domain.Role, error) {
	var assignment schema.RoleAssignment
	err := s.db.WithContext(ctx).Where("principal = ?", principal).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("failed to get role assignment: %w", err)
	}

	return assignment.Role, nil
}

// SetRole assigns a role to a principal
func (s *pgStore) SetRole(ctx context.Context, principal domain.Principal, role domain.Role, assignedBy domain.Principal) error {
	assignment := schema.RoleAssignment{
		Principal:  principal,
		Role:       role,
		AssignedBy: assignedBy,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "principal"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"role":        role,
			"assigned_by": assignedBy,
			"updated_at":  time.Now(),
		}),
	}).Create(&assignment).Error
	if err != nil {
		return fmt.Errorf("failed to set role assignment: %w", err)
	}

	return nil
}

// GetSetting retrieves a configuration value, or "" if unset
func (s *pgStore) GetSetting(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return kv.Value, nil
}

// SetSetting stores a configuration value
func (s *pgStore) SetSetting(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}

	return nil
}

// CreateWebhookClient registers an observer endpoint
func (s *pgStore) CreateWebhookClient(ctx context.Context, client *schema.WebhookClient) error {
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create webhook client: %w", err)
	}

	return nil
}

// ListActiveWebhookClients returns the clients eligible for delivery
func (s *pgStore) ListActiveWebhookClients(ctx context.Context) ([]schema.WebhookClient, error) {
	var clients []schema.WebhookClient
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook clients: %w", err)
	}

	return clients, nil
}

// CreateWebhookDelivery records a new delivery attempt row
func (s *pgStore) CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	if err := s.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}

	return nil
}

// SaveWebhookDelivery persists the outcome of a delivery attempt
func (s *pgStore) SaveWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	if err := s.db.WithContext(ctx).Save(delivery).Error; err != nil {
		return fmt.Errorf("failed to save webhook delivery: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testOwner    = domain.Principal("0x4000000000000000000000000000000000000001")
	testNewOwner = domain.Principal("0x4000000000000000000000000000000000000002")
	testViewer   = domain.Principal("0x4000000000000000000000000000000000000003")
	testPayer    = domain.Principal("0x4000000000000000000000000000000000000004")
	testAdmin    = domain.Principal("0x4000000000000000000000000000000000000005")
)

// buildTestContent creates a test content input with a unique fingerprint
func buildTestContent(owner domain.Principal, fingerprint string, price uint64) CreateContentInput {
	return CreateContentInput{
		Owner:               owner,
		Fingerprint:         fingerprint,
		MetadataFingerprint: "meta-" + fingerprint,
		Category:            domain.CategoryImage,
		Price:               price,
		AITrainingAllowed:   true,
		RegisteredAt:        time.Now().UTC(),
	}
}

// =============================================================================
// Shared Store Test Suite
// =============================================================================

// RunStoreTests runs the full store test suite against a Store implementation.
// InitDB is called before each test for a clean database state.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	ctx := context.Background()

	t.Run("CreateContent", func(t *testing.T) {
		t.Run("creates a record and its owned index entry", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			record, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-create-1", 100000))
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Greater(t, record.ID, uint64(0))
			assert.Equal(t, testOwner, record.Owner)
			assert.Equal(t, domain.StatusActive, record.Status)

			ids, err := st.ListOwnedContent(ctx, testOwner)
			require.NoError(t, err)
			assert.Equal(t, []uint64{record.ID}, ids)
		})

		t.Run("duplicate fingerprint rejected", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			_, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-dup", 0))
			require.NoError(t, err)

			_, err = st.CreateContent(ctx, buildTestContent(testNewOwner, "fp-dup", 0))
			assert.ErrorIs(t, err, domain.ErrFingerprintExists)
		})

		t.Run("ids are assigned in registration order", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			first, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-order-1", 0))
			require.NoError(t, err)
			second, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-order-2", 0))
			require.NoError(t, err)

			assert.Greater(t, second.ID, first.ID)
		})
	})

	t.Run("GetContent", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-get", 100000))
		require.NoError(t, err)

		record, err := st.GetContent(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, created.ID, record.ID)
		assert.Equal(t, "fp-get", record.Fingerprint)

		// Missing record yields nil, not an error
		record, err = st.GetContent(ctx, created.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, record)

		// Zero is the "not found" sentinel
		record, err = st.GetContent(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("GetContentForUpdate", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-locked", 100000))
		require.NoError(t, err)

		err = st.Atomically(ctx, func(tx Store) error {
			record, err := tx.GetContentForUpdate(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, created.ID, record.ID)

			// The lock holds across the check; the mutation commits with it
			return tx.UpdateContentStatus(ctx, created.ID, domain.StatusDisputed)
		})
		require.NoError(t, err)

		record, err := st.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDisputed, record.Status)

		record, err = st.GetContentForUpdate(ctx, created.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("GetContentByFingerprint", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-lookup", 0))
		require.NoError(t, err)

		record, err := st.GetContentByFingerprint(ctx, "fp-lookup")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, created.ID, record.ID)

		record, err = st.GetContentByFingerprint(ctx, "fp-unknown")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("UpdateContent", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-update", 100000))
		require.NoError(t, err)

		err = st.UpdateContent(ctx, created.ID, UpdateContentInput{
			MetadataFingerprint: "meta-updated",
			Price:               250000,
			AITrainingAllowed:   false,
		})
		require.NoError(t, err)

		record, err := st.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "meta-updated", record.MetadataFingerprint)
		assert.Equal(t, uint64(250000), record.Price)
		assert.False(t, record.AITrainingAllowed)
		// Immutable fields untouched
		assert.Equal(t, "fp-update", record.Fingerprint)
		assert.Equal(t, testOwner, record.Owner)

		err = st.UpdateContent(ctx, created.ID+1000, UpdateContentInput{})
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})

	t.Run("UpdateContentStatus", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-status", 0))
		require.NoError(t, err)

		err = st.UpdateContentStatus(ctx, created.ID, domain.StatusDisputed)
		require.NoError(t, err)

		record, err := st.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDisputed, record.Status)

		err = st.UpdateContentStatus(ctx, created.ID+1000, domain.StatusActive)
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})

	t.Run("TransferOwnership", func(t *testing.T) {
		t.Run("reassigns owner and fixes both index sides", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			first, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-xfer-1", 0))
			require.NoError(t, err)
			second, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-xfer-2", 0))
			require.NoError(t, err)
			third, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-xfer-3", 0))
			require.NoError(t, err)

			err = st.TransferOwnership(ctx, first.ID, testOwner, testNewOwner)
			require.NoError(t, err)

			record, err := st.GetContent(ctx, first.ID)
			require.NoError(t, err)
			assert.Equal(t, testNewOwner, record.Owner)

			// The vacated position is filled by the final entry
			ids, err := st.ListOwnedContent(ctx, testOwner)
			require.NoError(t, err)
			assert.Equal(t, []uint64{third.ID, second.ID}, ids)

			ids, err = st.ListOwnedContent(ctx, testNewOwner)
			require.NoError(t, err)
			assert.Equal(t, []uint64{first.ID}, ids)
		})

		t.Run("wrong current owner rejected", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-xfer-wrong", 0))
			require.NoError(t, err)

			err = st.TransferOwnership(ctx, created.ID, testNewOwner, testViewer)
			assert.ErrorIs(t, err, domain.ErrContentNotFound)
		})
	})

	t.Run("AccessGrants", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-grant", 100000))
		require.NoError(t, err)

		has, err := st.HasAccessGrant(ctx, created.ID, testViewer)
		require.NoError(t, err)
		assert.False(t, has)

		err = st.UpsertAccessGrant(ctx, created.ID, testViewer, schema.GrantSourceOwner)
		require.NoError(t, err)

		has, err = st.HasAccessGrant(ctx, created.ID, testViewer)
		require.NoError(t, err)
		assert.True(t, has)

		// Granting twice is idempotent
		err = st.UpsertAccessGrant(ctx, created.ID, testViewer, schema.GrantSourcePurchase)
		require.NoError(t, err)

		err = st.DeleteAccessGrant(ctx, created.ID, testViewer)
		require.NoError(t, err)

		has, err = st.HasAccessGrant(ctx, created.ID, testViewer)
		require.NoError(t, err)
		assert.False(t, has)

		// Revoking an absent grant is a no-op
		err = st.DeleteAccessGrant(ctx, created.ID, testViewer)
		assert.NoError(t, err)
	})

	t.Run("Accounts", func(t *testing.T) {
		t.Run("credit creates and increments", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			account, err := st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.Nil(t, account)

			err = st.CreditAccount(ctx, testPayer, 100000)
			require.NoError(t, err)
			err = st.CreditAccount(ctx, testPayer, 50000)
			require.NoError(t, err)

			account, err = st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			require.NotNil(t, account)
			assert.Equal(t, uint64(150000), account.Balance)
			assert.False(t, account.Frozen)
		})

		t.Run("freeze and unfreeze", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			err := st.CreditAccount(ctx, testPayer, 1000)
			require.NoError(t, err)

			err = st.SetAccountFrozen(ctx, testPayer, true)
			require.NoError(t, err)

			account, err := st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.True(t, account.Frozen)

			err = st.SetAccountFrozen(ctx, testPayer, false)
			require.NoError(t, err)

			account, err = st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.False(t, account.Frozen)
		})
	})

	t.Run("Transfer", func(t *testing.T) {
		t.Run("moves balance between accounts", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			require.NoError(t, st.CreditAccount(ctx, testPayer, 100000))
			require.NoError(t, st.CreditAccount(ctx, testOwner, 5000))

			err := st.Transfer(ctx, testPayer, testOwner, 30000)
			require.NoError(t, err)

			payer, err := st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.Equal(t, uint64(70000), payer.Balance)

			owner, err := st.GetAccount(ctx, testOwner)
			require.NoError(t, err)
			assert.Equal(t, uint64(35000), owner.Balance)
		})

		t.Run("creates the recipient account when absent", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			require.NoError(t, st.CreditAccount(ctx, testPayer, 100000))

			err := st.Transfer(ctx, testPayer, testNewOwner, 40000)
			require.NoError(t, err)

			recipient, err := st.GetAccount(ctx, testNewOwner)
			require.NoError(t, err)
			require.NotNil(t, recipient)
			assert.Equal(t, uint64(40000), recipient.Balance)
		})

		t.Run("insufficient funds", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			require.NoError(t, st.CreditAccount(ctx, testPayer, 100))

			err := st.Transfer(ctx, testPayer, testOwner, 101)
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

			// The debit did not happen
			payer, err := st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.Equal(t, uint64(100), payer.Balance)
		})

		t.Run("missing payer account", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			err := st.Transfer(ctx, testPayer, testOwner, 100)
			assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		})

		t.Run("frozen recipient aborts and rolls back the debit", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			require.NoError(t, st.CreditAccount(ctx, testPayer, 100000))
			require.NoError(t, st.CreditAccount(ctx, testOwner, 0))
			require.NoError(t, st.SetAccountFrozen(ctx, testOwner, true))

			err := st.Transfer(ctx, testPayer, testOwner, 30000)
			assert.ErrorIs(t, err, domain.ErrAccountFrozen)

			payer, err := st.GetAccount(ctx, testPayer)
			require.NoError(t, err)
			assert.Equal(t, uint64(100000), payer.Balance)
		})

		t.Run("zero amount and self transfer are no-ops", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			assert.NoError(t, st.Transfer(ctx, testPayer, testOwner, 0))
			assert.NoError(t, st.Transfer(ctx, testPayer, testPayer, 100))
		})
	})

	t.Run("Credentials", func(t *testing.T) {
		t.Run("mint and transfer", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-cred", 0))
			require.NoError(t, err)

			err = st.MintCredential(ctx, testOwner, created.ID, "meta-fp-cred")
			require.NoError(t, err)

			holder, err := st.CredentialHolder(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, testOwner, holder)

			err = st.TransferCredential(ctx, testOwner, testNewOwner, created.ID)
			require.NoError(t, err)

			holder, err = st.CredentialHolder(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, testNewOwner, holder)
		})

		t.Run("transfer by non-holder rejected", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			created, err := st.CreateContent(ctx, buildTestContent(testOwner, "fp-cred-mismatch", 0))
			require.NoError(t, err)
			require.NoError(t, st.MintCredential(ctx, testOwner, created.ID, ""))

			err = st.TransferCredential(ctx, testViewer, testNewOwner, created.ID)
			assert.ErrorIs(t, err, domain.ErrCredentialHolderMismatch)
		})

		t.Run("missing credential", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			_, err := st.CredentialHolder(ctx, 999999)
			assert.ErrorIs(t, err, domain.ErrCredentialNotFound)

			err = st.TransferCredential(ctx, testOwner, testNewOwner, 999999)
			assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
		})
	})

	t.Run("Roles", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		role, err := st.RoleOf(ctx, testViewer)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleNone, role)

		err = st.SetRole(ctx, testViewer, domain.RoleModerator, testAdmin)
		require.NoError(t, err)

		role, err = st.RoleOf(ctx, testViewer)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleModerator, role)

		// Reassignment overwrites
		err = st.SetRole(ctx, testViewer, domain.RoleAdmin, testAdmin)
		require.NoError(t, err)

		role, err = st.RoleOf(ctx, testViewer)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("Settings", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		value, err := st.GetSetting(ctx, "settlement:fee_basis_points")
		require.NoError(t, err)
		assert.Equal(t, "", value)

		err = st.SetSetting(ctx, "settlement:fee_basis_points", "250")
		require.NoError(t, err)

		value, err = st.GetSetting(ctx, "settlement:fee_basis_points")
		require.NoError(t, err)
		assert.Equal(t, "250", value)

		err = st.SetSetting(ctx, "settlement:fee_basis_points", "500")
		require.NoError(t, err)

		value, err = st.GetSetting(ctx, "settlement:fee_basis_points")
		require.NoError(t, err)
		assert.Equal(t, "500", value)
	})

	t.Run("WebhookClients", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		client := &schema.WebhookClient{
			ClientID:         "11111111-1111-1111-1111-111111111111",
			WebhookURL:       "https://example.com/hooks",
			WebhookSecret:    "secret-one",
			EventFilters:     datatypes.JSON(`["content.registered"]`),
			IsActive:         true,
			RetryMaxAttempts: 5,
		}
		require.NoError(t, st.CreateWebhookClient(ctx, client))

		inactive := &schema.WebhookClient{
			ClientID:         "22222222-2222-2222-2222-222222222222",
			WebhookURL:       "https://example.com/other",
			WebhookSecret:    "secret-two",
			IsActive:         true,
			RetryMaxAttempts: 5,
		}
		require.NoError(t, st.CreateWebhookClient(ctx, inactive))

		clients, err := st.ListActiveWebhookClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 2)

		// Deactivated clients drop out of the delivery list
		if pg, ok := st.(*pgStore); ok {
			require.NoError(t, pg.db.Model(&schema.WebhookClient{}).
				Where("client_id = ?", inactive.ClientID).
				Update("is_active", false).Error)

			clients, err = st.ListActiveWebhookClients(ctx)
			require.NoError(t, err)
			require.Len(t, clients, 1)
			assert.Equal(t, client.ClientID, clients[0].ClientID)
		}
	})

	t.Run("WebhookDeliveries", func(t *testing.T) {
		st := initDB(t)
		defer cleanupDB(t)

		client := &schema.WebhookClient{
			ClientID:         "33333333-3333-3333-3333-333333333333",
			WebhookURL:       "https://example.com/hooks",
			WebhookSecret:    "secret",
			IsActive:         true,
			RetryMaxAttempts: 5,
		}
		require.NoError(t, st.CreateWebhookClient(ctx, client))

		delivery := &schema.WebhookDelivery{
			ClientID:       client.ClientID,
			EventID:        "01J8ZC3JM0000000000000000E",
			EventType:      "content.registered",
			Payload:        datatypes.JSON(`{}`),
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		require.NoError(t, st.CreateWebhookDelivery(ctx, delivery))
		assert.Greater(t, delivery.ID, uint64(0))

		// The (client_id, event_id) pair is unique; redelivery is detectable
		dup := &schema.WebhookDelivery{
			ClientID:       client.ClientID,
			EventID:        delivery.EventID,
			EventType:      "content.registered",
			Payload:        datatypes.JSON(`{}`),
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		err := st.CreateWebhookDelivery(ctx, dup)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

		// Recording the outcome of an attempt
		now := time.Now().UTC()
		status := 200
		delivery.Attempts = 1
		delivery.LastAttemptAt = &now
		delivery.ResponseStatus = &status
		delivery.ResponseBody = "ok"
		delivery.DeliveryStatus = schema.WebhookDeliveryStatusSuccess
		require.NoError(t, st.SaveWebhookDelivery(ctx, delivery))
	})

	t.Run("Atomically", func(t *testing.T) {
		t.Run("commits all effects", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			var contentID uint64
			err := st.Atomically(ctx, func(tx Store) error {
				record, err := tx.CreateContent(ctx, buildTestContent(testOwner, "fp-atomic-commit", 0))
				if err != nil {
					return err
				}
				contentID = record.ID
				return tx.MintCredential(ctx, testOwner, record.ID, "")
			})
			require.NoError(t, err)

			record, err := st.GetContent(ctx, contentID)
			require.NoError(t, err)
			require.NotNil(t, record)

			holder, err := st.CredentialHolder(ctx, contentID)
			require.NoError(t, err)
			assert.Equal(t, testOwner, holder)
		})

		t.Run("an error rolls everything back", func(t *testing.T) {
			st := initDB(t)
			defer cleanupDB(t)

			sentinel := errors.New("abort")
			err := st.Atomically(ctx, func(tx Store) error {
				if _, err := tx.CreateContent(ctx, buildTestContent(testOwner, "fp-atomic-abort", 0)); err != nil {
					return err
				}
				return sentinel
			})
			assert.ErrorIs(t, err, sentinel)

			record, err := st.GetContentByFingerprint(ctx, "fp-atomic-abort")
			require.NoError(t, err)
			assert.Nil(t, record)
		})
	})
}

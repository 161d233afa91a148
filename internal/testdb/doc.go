// Package testdb provides helpers for database integration tests.
//
// Tests obtain a migrated connection with GetTestDBWithT and run their
// assertions inside WithTx, which always rolls back so tests can share one
// database and run in parallel:
//
//	func TestTaskStore_Integration(t *testing.T) {
//	    if testdb.ShouldSkipDatabaseTest() {
//	        t.Skip("TASKS_TEST_DATABASE_URL not set - skipping integration test")
//	    }
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // use tx
//	    })
//	}
package testdb

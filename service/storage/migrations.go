package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid          TEXT UNIQUE NOT NULL,
    caller_account_id TEXT NOT NULL,
    run_timestamp     DATETIME DEFAULT CURRENT_TIMESTAMP,
    run_duration      INTEGER,
    accounts_scanned  INTEGER DEFAULT 0,
    accounts_skipped  INTEGER DEFAULT 0,
    total_records     INTEGER DEFAULT 0,
    warning_count     INTEGER DEFAULT 0,
    cli_version       TEXT,
    run_profile       TEXT,
    role_name         TEXT,
    created_at        DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);

CREATE TABLE IF NOT EXISTS records (
    record_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id       INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    account_id   TEXT NOT NULL,
    account_name TEXT,
    fsx_id       TEXT NOT NULL,
    fsx_type     TEXT,
    region       TEXT NOT NULL,
    lifecycle    TEXT
);

CREATE INDEX IF NOT EXISTS idx_records_run
    ON records(run_id);
`

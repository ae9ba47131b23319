package store

const schema = `
-- Learner and educator accounts. Rows are created at signup and are
-- otherwise immutable except for skill level and last_login.
CREATE TABLE IF NOT EXISTS users (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    email                TEXT NOT NULL UNIQUE,
    role                 TEXT NOT NULL CHECK (role IN ('student', 'educator')),
    diagnostic_completed INTEGER NOT NULL DEFAULT 0,
    difficulty_level     INTEGER NOT NULL DEFAULT 1,
    skill_level          TEXT NOT NULL DEFAULT 'Beginner',
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_login           DATETIME
);

-- One row per scored quiz session. Never mutated after insert.
CREATE TABLE IF NOT EXISTS quiz_attempts (
    id              TEXT PRIMARY KEY,
    user_id         INTEGER NOT NULL,
    subject         TEXT NOT NULL,
    topic           TEXT NOT NULL,
    difficulty      TEXT NOT NULL,
    questions       TEXT NOT NULL, -- JSON array of questions as presented
    answers         TEXT NOT NULL, -- JSON array of selected option indexes
    score           INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    percentage      REAL NOT NULL,
    feedback        TEXT,          -- JSON evaluation detail
    attempt_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

    FOREIGN KEY(user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_quiz_attempts_user
    ON quiz_attempts(user_id, attempt_date);

-- One row per diagnostic run; the latest row drives quiz difficulty.
CREATE TABLE IF NOT EXISTS diagnostic_results (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id          INTEGER NOT NULL,
    score            INTEGER NOT NULL,
    total_questions  INTEGER NOT NULL,
    percentage       REAL NOT NULL,
    skill_level      TEXT NOT NULL,
    difficulty_level INTEGER NOT NULL,
    taken_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

    FOREIGN KEY(user_id) REFERENCES users(id)
);

-- Append-only log of LLM traffic, written by the logging middleware.
CREATE TABLE IF NOT EXISTS llm_requests (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    model         TEXT NOT NULL,
    purpose       TEXT NOT NULL,
    input_tokens  INTEGER NOT NULL DEFAULT 0,
    output_tokens INTEGER NOT NULL DEFAULT 0,
    latency_ms    INTEGER NOT NULL DEFAULT 0,
    success       INTEGER NOT NULL,
    error_message TEXT,
    request_body  TEXT,
    response_body TEXT
);
`

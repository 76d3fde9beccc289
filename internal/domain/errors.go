package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText         = errors.New("texte vide")
	ErrDetectionFailed   = errors.New("détection de langue impossible")
	ErrTranslationFailed = errors.New("traduction impossible")
	ErrRateLimited       = errors.New("quota de traduction atteint")
	ErrNoTranslations    = errors.New("aucune traduction aboutie")
)

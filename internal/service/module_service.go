package service

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/progression"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/internal/util"
	"coder_edu_frontend/pkg/logger"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var ErrInvalidDocument = errors.New("upstream returned an invalid module document")

// ModuleService 模块内容、生成、测验和 PDF 下载
type ModuleService struct {
	Storage *StorageService
}

func NewModuleService(storage *StorageService) *ModuleService {
	return &ModuleService{Storage: storage}
}

// Backend 把当前请求的会话绑定成进度引擎的上游
func (s *ModuleService) Backend(sess *session.Session) progression.Backend {
	return &moduleBackend{sess: sess}
}

type moduleBackend struct {
	sess *session.Session
}

func (b *moduleBackend) Module(ctx context.Context, id uint) (*model.Module, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var m model.Module
	err := b.sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/modules/%d", id)}, &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (b *moduleBackend) Course(ctx context.Context, id uint) (*model.Course, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var c model.Course
	err := b.sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/courses/%d", id)}, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (b *moduleBackend) GenerateContent(ctx context.Context, moduleID uint) error {
	if moduleID == 0 {
		return util.ErrResourceIDInvalid
	}
	return b.sess.DoAuth(ctx, apiclient.Request{Method: http.MethodPost, Path: fmt.Sprintf("/modules/%d/generate", moduleID)}, nil)
}

func (b *moduleBackend) Quiz(ctx context.Context, moduleID uint) (*model.Quiz, error) {
	var q model.Quiz
	err := b.sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/modules/%d/quiz", moduleID)}, &q)
	if err != nil {
		return nil, err
	}
	if q.ModuleID == 0 {
		q.ModuleID = moduleID
	}
	return &q, nil
}

func (b *moduleBackend) QuizAccess(ctx context.Context, moduleID uint) (*model.QuizAccess, error) {
	var a model.QuizAccess
	err := b.sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/modules/%d/quiz/access", moduleID)}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (b *moduleBackend) SubmitQuiz(ctx context.Context, moduleID uint, answers model.QuizAttempt) (*model.QuizResult, error) {
	var r model.QuizResult
	err := b.sess.DoAuth(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/modules/%d/quiz/submit", moduleID),
		Body:   model.QuizSubmission{Answers: answers},
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type cachedDocument struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
}

// 缓存按用户隔离：下载权限由服务端按用户判定（套餐、解锁状态），不能跨用户复用
func documentKey(moduleID, userID uint) string {
	return fmt.Sprintf("modules/%d/users/%d/content.pdf", moduleID, userID)
}

func documentMetaKey(moduleID, userID uint) string {
	return fmt.Sprintf("modules/%d/users/%d/meta.json", moduleID, userID)
}

// contentFingerprint 模块内容变化（重新生成）后旧缓存自动失效
func contentFingerprint(m *model.Module) string {
	var content string
	if m.Content != nil {
		content = *m.Content
	}
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Download 模块内容 PDF。先向服务端确认当前用户可以访问该模块，再走该用户自己的缓存；
// 锁定的模块始终直接请求服务端
func (s *ModuleService) Download(ctx context.Context, sess *session.Session, moduleID uint) (*apiclient.File, error) {
	if moduleID == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	module, err := s.Backend(sess).Module(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	user := sess.User()
	if user == nil {
		return nil, apiclient.ErrAuthRequired
	}

	cacheable := !module.IsLocked
	fingerprint := contentFingerprint(module)
	if cacheable {
		if f := s.cached(ctx, moduleID, user.ID, fingerprint); f != nil {
			return f, nil
		}
	}

	f, err := sess.Download(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/modules/%d/download", moduleID),
	}, util.ModuleFallbackFilename(moduleID))
	if err != nil {
		return nil, err
	}
	if _, err := util.ValidateMimeType(f.Data, []string{util.MimePDF}); err != nil {
		logger.Log.Warn("Upstream returned a non-PDF document", zap.Uint("module_id", moduleID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	f.ContentType = util.MimePDF

	if cacheable {
		s.store(ctx, moduleID, user.ID, fingerprint, f)
	}
	return f, nil
}

func (s *ModuleService) cached(ctx context.Context, moduleID, userID uint, fingerprint string) *apiclient.File {
	if s.Storage == nil {
		return nil
	}
	raw, err := s.Storage.Read(ctx, documentMetaKey(moduleID, userID))
	if err != nil {
		if !errors.Is(err, ErrObjectNotFound) {
			logger.Log.Warn("Read cached module document failed", zap.Uint("module_id", moduleID), zap.Error(err))
		}
		return nil
	}
	var meta cachedDocument
	if err := json.Unmarshal(raw, &meta); err != nil || meta.Fingerprint != fingerprint {
		s.invalidate(ctx, moduleID, userID)
		return nil
	}

	data, err := s.Storage.Read(ctx, documentKey(moduleID, userID))
	if err != nil {
		if !errors.Is(err, ErrObjectNotFound) {
			logger.Log.Warn("Read cached module document failed", zap.Uint("module_id", moduleID), zap.Error(err))
		}
		return nil
	}

	name := meta.Name
	if name == "" {
		name = util.ModuleFallbackFilename(moduleID)
	}
	return &apiclient.File{Name: name, ContentType: util.MimePDF, Data: data}
}

// store 缓存失败不影响下载。先写文档再写元数据，元数据存在即表示文档完整
func (s *ModuleService) store(ctx context.Context, moduleID, userID uint, fingerprint string, f *apiclient.File) {
	if s.Storage == nil {
		return
	}
	url, err := s.Storage.Upload(ctx, documentKey(moduleID, userID), f.Data, util.MimePDF)
	if err != nil {
		logger.Log.Warn("Cache module document failed", zap.Uint("module_id", moduleID), zap.Error(err))
		return
	}
	meta, _ := json.Marshal(cachedDocument{Name: f.Name, Fingerprint: fingerprint})
	if _, err := s.Storage.Upload(ctx, documentMetaKey(moduleID, userID), meta, util.MimeJSON); err != nil {
		logger.Log.Warn("Cache module document failed", zap.Uint("module_id", moduleID), zap.Error(err))
		return
	}
	logger.Log.Debug("Module document cached", zap.Uint("module_id", moduleID), zap.Uint("user_id", userID), zap.String("url", url))
}

// invalidate 删除内容已过期的缓存，避免权限变化后还留着旧文档
func (s *ModuleService) invalidate(ctx context.Context, moduleID, userID uint) {
	for _, key := range []string{documentMetaKey(moduleID, userID), documentKey(moduleID, userID)} {
		if err := s.Storage.Delete(ctx, key); err != nil {
			logger.Log.Warn("Invalidate cached module document failed", zap.Uint("module_id", moduleID), zap.Error(err))
		}
	}
}

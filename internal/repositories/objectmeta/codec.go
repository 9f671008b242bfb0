package objectmeta

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

const snapshotVersion = 1

// snapshotData is what gets serialized to redis. Absent fields are omitted.
// Enumerations are stored by wire string; a symbol the client did not know
// is stored as types.UnknownSymbol and restored as the reserved symbol.
type snapshotData struct {
	Version  int       `json:"v"`
	StoredAt time.Time `json:"stored_at"`

	AcceptRanges         *string           `json:"accept_ranges,omitempty"`
	ArchiveStatus        *string           `json:"archive_status,omitempty"`
	ContentLength        *int64            `json:"content_length,omitempty"`
	ContentType          *string           `json:"content_type,omitempty"`
	ContentEncoding      *string           `json:"content_encoding,omitempty"`
	CacheControl         *string           `json:"cache_control,omitempty"`
	ETag                 *string           `json:"etag,omitempty"`
	LastModified         *time.Time        `json:"last_modified,omitempty"`
	Expires              *time.Time        `json:"expires,omitempty"`
	DeleteMarker         *bool             `json:"delete_marker,omitempty"`
	VersionID            *string           `json:"version_id,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	HasMetadata          bool              `json:"has_metadata,omitempty"`
	MissingMeta          *int32            `json:"missing_meta,omitempty"`
	ServerSideEncryption *string           `json:"server_side_encryption,omitempty"`
	SSEKMSKeyID          *string           `json:"sse_kms_key_id,omitempty"`
	BucketKeyEnabled     *bool             `json:"bucket_key_enabled,omitempty"`
	StorageClass         *string           `json:"storage_class,omitempty"`
	RequestCharged       *string           `json:"request_charged,omitempty"`
	ReplicationStatus    *string           `json:"replication_status,omitempty"`
	PartsCount           *int32            `json:"parts_count,omitempty"`
	ChecksumCRC32        *string           `json:"checksum_crc32,omitempty"`
	ChecksumSHA256       *string           `json:"checksum_sha256,omitempty"`
}

func encodeEnum[S interface{ String() string }](v S, ok bool) *string {
	if !ok {
		return nil
	}
	s := v.String()
	return &s
}

func decodeEnum[S any](s *string, parse func(string) S, unknown S) *S {
	if s == nil {
		return nil
	}
	if *s == types.UnknownSymbol {
		return &unknown
	}
	v := parse(*s)
	return &v
}

func ptrIf[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

func marshalSnapshot(head *types.HeadObjectResponse, storedAt time.Time) ([]byte, error) {
	data := snapshotData{
		Version:  snapshotVersion,
		StoredAt: storedAt.UTC(),

		AcceptRanges:         ptrIf(head.AcceptRanges()),
		ArchiveStatus:        encodeEnum(head.ArchiveStatus()),
		ContentLength:        ptrIf(head.ContentLength()),
		ContentType:          ptrIf(head.ContentType()),
		ContentEncoding:      ptrIf(head.ContentEncoding()),
		CacheControl:         ptrIf(head.CacheControl()),
		ETag:                 ptrIf(head.ETag()),
		LastModified:         ptrIf(head.LastModified()),
		Expires:              ptrIf(head.Expires()),
		DeleteMarker:         ptrIf(head.DeleteMarker()),
		VersionID:            ptrIf(head.VersionID()),
		MissingMeta:          ptrIf(head.MissingMeta()),
		ServerSideEncryption: encodeEnum(head.ServerSideEncryption()),
		SSEKMSKeyID:          ptrIf(head.SSEKMSKeyID()),
		BucketKeyEnabled:     ptrIf(head.BucketKeyEnabled()),
		StorageClass:         encodeEnum(head.StorageClass()),
		RequestCharged:       encodeEnum(head.RequestCharged()),
		ReplicationStatus:    encodeEnum(head.ReplicationStatus()),
		PartsCount:           ptrIf(head.PartsCount()),
		ChecksumCRC32:        ptrIf(head.ChecksumCRC32()),
		ChecksumSHA256:       ptrIf(head.ChecksumSHA256()),
	}

	// omitempty drops an empty map, so presence is recorded separately
	if metadata, ok := head.Metadata(); ok {
		data.Metadata = metadata
		data.HasMetadata = true
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal object metadata snapshot")
	}
	return raw, nil
}

func unmarshalSnapshot(raw []byte) (*types.HeadObjectResponse, time.Time, error) {
	var data snapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, time.Time{}, errors.Wrap(err, "failed to unmarshal object metadata snapshot")
	}
	if data.Version != snapshotVersion {
		return nil, time.Time{}, errors.FailedPreconditionf("unsupported snapshot version %d", data.Version).
			WithMeta("version", data.Version)
	}

	var metadata map[string]string
	if data.HasMetadata {
		metadata = data.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
	}

	head := types.NewHeadObjectResponseBuilder().
		WithAcceptRanges(data.AcceptRanges).
		WithArchiveStatus(decodeEnum(data.ArchiveStatus, types.ParseArchiveStatus, types.ArchiveStatusUnknownToSDKVersion)).
		WithContentLength(data.ContentLength).
		WithContentType(data.ContentType).
		WithContentEncoding(data.ContentEncoding).
		WithCacheControl(data.CacheControl).
		WithETag(data.ETag).
		WithLastModified(data.LastModified).
		WithExpires(data.Expires).
		WithDeleteMarker(data.DeleteMarker).
		WithVersionID(data.VersionID).
		WithMetadata(metadata).
		WithMissingMeta(data.MissingMeta).
		WithServerSideEncryption(decodeEnum(data.ServerSideEncryption, types.ParseServerSideEncryption, types.ServerSideEncryptionUnknownToSDKVersion)).
		WithSSEKMSKeyID(data.SSEKMSKeyID).
		WithBucketKeyEnabled(data.BucketKeyEnabled).
		WithStorageClass(decodeEnum(data.StorageClass, types.ParseStorageClass, types.StorageClassUnknownToSDKVersion)).
		WithRequestCharged(decodeEnum(data.RequestCharged, types.ParseRequestCharged, types.RequestChargedUnknownToSDKVersion)).
		WithReplicationStatus(decodeEnum(data.ReplicationStatus, types.ParseReplicationStatus, types.ReplicationStatusUnknownToSDKVersion)).
		WithPartsCount(data.PartsCount).
		WithChecksumCRC32(data.ChecksumCRC32).
		WithChecksumSHA256(data.ChecksumSHA256).
		Build()

	return head, data.StoredAt, nil
}
